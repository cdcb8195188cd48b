package mcp

import (
	"context"
	"errors"

	"github.com/iquadra-Harsh/wellness-wizard/internal/exerciselib"
	"github.com/iquadra-Harsh/wellness-wizard/internal/insights"
	"github.com/iquadra-Harsh/wellness-wizard/internal/plans"
	"github.com/iquadra-Harsh/wellness-wizard/internal/stats"
)

type StatsRepo interface {
	WorkoutStats(ctx context.Context, userID, days int) (*stats.WorkoutStats, error)
	MealStats(ctx context.Context, userID, days int) (*stats.MealStats, error)
}

type PlansRepo interface {
	GetActive(ctx context.Context, userID int) (*plans.Plan, error)
	NextDay(ctx context.Context, userID int) (*plans.PlanDay, error)
}

type ExercisesRepo interface {
	Search(ctx context.Context, params exerciselib.SearchParams) ([]exerciselib.Exercise, error)
}

type InsightsRepo interface {
	List(ctx context.Context, userID int, unreadOnly bool, limit int) ([]insights.Insight, error)
}

// contextService provides the fitness data exposed by the MCP tools.
// Used by Handler for testability.
type contextService interface {
	WorkoutStats(ctx context.Context, userID, days int) (*stats.WorkoutStats, error)
	MealStats(ctx context.Context, userID, days int) (*stats.MealStats, error)
	ActivePlan(ctx context.Context, userID int) (*plans.Plan, error)
	NextWorkoutDay(ctx context.Context, userID int) (*plans.PlanDay, error)
	SearchExercises(ctx context.Context, params exerciselib.SearchParams) ([]exerciselib.Exercise, error)
	ListInsights(ctx context.Context, userID int, unreadOnly bool, limit int) ([]insights.Insight, error)
}

// ContextService holds the repos behind the MCP tools. Missing plan data is
// reported as nil results rather than errors.
type ContextService struct {
	stats     StatsRepo
	plans     PlansRepo
	exercises ExercisesRepo
	insights  InsightsRepo
}

func NewContextService(
	statsRepo StatsRepo,
	plansRepo PlansRepo,
	exercisesRepo ExercisesRepo,
	insightsRepo InsightsRepo,
) *ContextService {
	return &ContextService{
		stats:     statsRepo,
		plans:     plansRepo,
		exercises: exercisesRepo,
		insights:  insightsRepo,
	}
}

func (s *ContextService) WorkoutStats(ctx context.Context, userID, days int) (*stats.WorkoutStats, error) {
	if days <= 0 {
		days = stats.DefaultDays
	}
	return s.stats.WorkoutStats(ctx, userID, days)
}

func (s *ContextService) MealStats(ctx context.Context, userID, days int) (*stats.MealStats, error) {
	if days <= 0 {
		days = stats.DefaultDays
	}
	return s.stats.MealStats(ctx, userID, days)
}

// ActivePlan returns nil when the user has no active plan.
func (s *ContextService) ActivePlan(ctx context.Context, userID int) (*plans.Plan, error) {
	plan, err := s.plans.GetActive(ctx, userID)
	if errors.Is(err, plans.ErrPlanNotFound) {
		return nil, nil
	}
	return plan, err
}

// NextWorkoutDay returns nil when there is no active plan or it has no days.
func (s *ContextService) NextWorkoutDay(ctx context.Context, userID int) (*plans.PlanDay, error) {
	day, err := s.plans.NextDay(ctx, userID)
	if errors.Is(err, plans.ErrPlanNotFound) || errors.Is(err, plans.ErrPlanHasNoDays) {
		return nil, nil
	}
	return day, err
}

func (s *ContextService) SearchExercises(ctx context.Context, params exerciselib.SearchParams) ([]exerciselib.Exercise, error) {
	return s.exercises.Search(ctx, params)
}

func (s *ContextService) ListInsights(ctx context.Context, userID int, unreadOnly bool, limit int) ([]insights.Insight, error) {
	return s.insights.List(ctx, userID, unreadOnly, limit)
}
