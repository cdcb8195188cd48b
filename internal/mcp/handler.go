package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iquadra-Harsh/wellness-wizard/internal/exerciselib"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// StatsInput is the input for get_workout_stats and get_meal_stats.
type StatsInput struct {
	UserID int `json:"user_id" jsonschema:"Id of the user"`
	Days   int `json:"days,omitempty" jsonschema:"Size of the window in days, counted back from now (default 7)"`
}

// UserInput is the input for tools that only need the user.
type UserInput struct {
	UserID int `json:"user_id" jsonschema:"Id of the user"`
}

// SearchExercisesInput is the input for search_exercise_library.
type SearchExercisesInput struct {
	Search    string `json:"search,omitempty" jsonschema:"Substring of the exercise name or id"`
	Muscle    string `json:"muscle,omitempty" jsonschema:"Primary muscle (e.g. chest, hamstrings)"`
	Equipment string `json:"equipment,omitempty" jsonschema:"Equipment (e.g. barbell, body only)"`
	Level     string `json:"level,omitempty" jsonschema:"Level (beginner, intermediate, expert)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Max number of results (default 50)"`
}

// ListInsightsInput is the input for list_insights.
type ListInsightsInput struct {
	UserID     int  `json:"user_id" jsonschema:"Id of the user"`
	UnreadOnly bool `json:"unread_only,omitempty" jsonschema:"Only return insights not yet marked as read"`
	Limit      int  `json:"limit,omitempty" jsonschema:"Max number of results (default 20)"`
}

func (h *Handler) GetWorkoutStatsTool() func(context.Context, *mcp.CallToolRequest, StatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in StatsInput) (*mcp.CallToolResult, any, error) {
		if res := checkUserID(in.UserID); res != nil {
			return res, nil, nil
		}
		ws, err := h.service.WorkoutStats(ctx, in.UserID, in.Days)
		if err != nil {
			return errorResult("Error fetching workout stats: " + err.Error()), nil, nil
		}
		return jsonResult(ws), nil, nil
	}
}

func (h *Handler) GetMealStatsTool() func(context.Context, *mcp.CallToolRequest, StatsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in StatsInput) (*mcp.CallToolResult, any, error) {
		if res := checkUserID(in.UserID); res != nil {
			return res, nil, nil
		}
		ms, err := h.service.MealStats(ctx, in.UserID, in.Days)
		if err != nil {
			return errorResult("Error fetching meal stats: " + err.Error()), nil, nil
		}
		return jsonResult(ms), nil, nil
	}
}

func (h *Handler) GetActivePlanTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if res := checkUserID(in.UserID); res != nil {
			return res, nil, nil
		}
		plan, err := h.service.ActivePlan(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching active plan: " + err.Error()), nil, nil
		}
		if plan == nil {
			return textResult("The user has no active workout plan."), nil, nil
		}
		return jsonResult(plan), nil, nil
	}
}

func (h *Handler) GetNextWorkoutDayTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if res := checkUserID(in.UserID); res != nil {
			return res, nil, nil
		}
		day, err := h.service.NextWorkoutDay(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching next workout day: " + err.Error()), nil, nil
		}
		if day == nil {
			return textResult("The user has no active workout plan with days."), nil, nil
		}
		return jsonResult(day), nil, nil
	}
}

func (h *Handler) SearchExerciseLibraryTool() func(context.Context, *mcp.CallToolRequest, SearchExercisesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SearchExercisesInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.SearchExercises(ctx, exerciselib.SearchParams{
			Search:        in.Search,
			PrimaryMuscle: in.Muscle,
			Equipment:     in.Equipment,
			Level:         in.Level,
			Limit:         in.Limit,
		})
		if err != nil {
			return errorResult("Error searching exercises: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func (h *Handler) ListInsightsTool() func(context.Context, *mcp.CallToolRequest, ListInsightsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListInsightsInput) (*mcp.CallToolResult, any, error) {
		if res := checkUserID(in.UserID); res != nil {
			return res, nil, nil
		}
		list, err := h.service.ListInsights(ctx, in.UserID, in.UnreadOnly, in.Limit)
		if err != nil {
			return errorResult("Error listing insights: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func checkUserID(userID int) *mcp.CallToolResult {
	if userID <= 0 {
		return errorResult(fmt.Sprintf("Invalid user_id: %d", userID))
	}
	return nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
