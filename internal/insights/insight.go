package insights

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/internal/meals"
	"github.com/iquadra-Harsh/wellness-wizard/internal/stats"
	"github.com/iquadra-Harsh/wellness-wizard/internal/workouts"
)

var (
	ErrInsightNotFound   = errors.New("insight not found")
	ErrGeneratorDisabled = errors.New("insight generator not configured")
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

type Type string

const (
	TypePattern        Type = "pattern"
	TypeRecommendation Type = "recommendation"
	TypeAchievement    Type = "achievement"
)

func (t Type) Valid() bool {
	switch t {
	case TypePattern, TypeRecommendation, TypeAchievement:
		return true
	}
	return false
}

type Insight struct {
	ID        int             `json:"id"`
	UserID    int             `json:"userId"`
	Type      Type            `json:"type"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Data      json.RawMessage `json:"data,omitempty"`
	IsRead    bool            `json:"isRead"`
	CreatedAt time.Time       `json:"createdAt"`
}

// GeneratedInsight is a single insight as produced by a Generator, not yet stored.
type GeneratedInsight struct {
	Type    Type            `json:"type"`
	Title   string          `json:"title"`
	Content string          `json:"content"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (g GeneratedInsight) valid() bool {
	return g.Type.Valid() && strings.TrimSpace(g.Title) != "" && strings.TrimSpace(g.Content) != ""
}

// InsightInput is the recent activity of a user the generator reasons about.
type InsightInput struct {
	Workouts     []workouts.Workout  `json:"recentWorkouts"`
	Meals        []meals.Meal        `json:"recentMeals"`
	WorkoutStats *stats.WorkoutStats `json:"workoutStats"`
	MealStats    *stats.MealStats    `json:"mealStats"`
}

// ParseGenerated extracts insights from a model response. The response should
// hold a JSON array, possibly wrapped in prose or a code fence, or an object
// with an "insights" array. Entries that don't decode or miss a known type,
// a title or a content are dropped.
func ParseGenerated(content string) []GeneratedInsight {
	content = strings.TrimSpace(content)

	var wrapped struct {
		Insights []json.RawMessage `json:"insights"`
	}
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(content), &wrapped); err == nil && wrapped.Insights != nil {
		entries = wrapped.Insights
	} else {
		start := strings.Index(content, "[")
		end := strings.LastIndex(content, "]")
		if start < 0 || end <= start {
			return nil
		}
		if err := json.Unmarshal([]byte(content[start:end+1]), &entries); err != nil {
			return nil
		}
	}

	generated := make([]GeneratedInsight, 0, len(entries))
	for _, entry := range entries {
		var g GeneratedInsight
		if err := json.Unmarshal(entry, &g); err != nil {
			continue
		}
		g.Type = Type(strings.ToLower(strings.TrimSpace(string(g.Type))))
		if !g.valid() {
			continue
		}
		g.Title = strings.TrimSpace(g.Title)
		g.Content = strings.TrimSpace(g.Content)
		if string(g.Data) == "null" {
			g.Data = nil
		}
		generated = append(generated, g)
	}
	return generated
}
