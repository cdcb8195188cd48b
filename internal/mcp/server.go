package mcp

import (
	"crypto/subtle"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// SecretHeader carries the shared secret required by the HTTP transport.
const SecretHeader = "X-MCP-Secret"

// NewServer builds an MCP server with the fitness tools: workout and meal
// stats, the active plan and its next day, the exercise library and insights.
func NewServer(service contextService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "wellness-wizard",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_stats",
		Description: "Returns workout totals (count, duration, calories) and average duration for the user over the last N days (default 7).",
	}, h.GetWorkoutStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_meal_stats",
		Description: "Returns meal totals (count, calories, protein, carbs, fat), average calories and macro percentage breakdown for the user over the last N days (default 7).",
	}, h.GetMealStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_active_plan",
		Description: "Returns the active workout plan of the user with all its days, or a note that there is none.",
	}, h.GetActivePlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_next_workout_day",
		Description: "Returns the day of the active plan the user should train next.",
	}, h.GetNextWorkoutDayTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_exercise_library",
		Description: "Searches the exercise library. Optional filters: search (name substring), muscle, equipment, level, limit.",
	}, h.SearchExerciseLibraryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_insights",
		Description: "Lists the generated insights of the user, newest first. Optional: unread_only, limit.",
	}, h.ListInsightsTool())

	return s
}

// NewHTTPHandler serves the server over the streamable HTTP transport. Every
// request must carry the shared secret in the X-MCP-Secret header; an empty
// secret disables the endpoint.
func NewHTTPHandler(server *mcp.Server, secret string) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if secret == "" {
			http.Error(w, "mcp disabled", http.StatusServiceUnavailable)
			return
		}
		given := r.Header.Get(SecretHeader)
		if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			log.Tracef("[mcp] unauthorized request from %s", r.RemoteAddr)
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		streamable.ServeHTTP(w, r)
	})
}
