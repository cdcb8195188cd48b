package insights

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/iquadra-Harsh/wellness-wizard/internal/meals"
	"github.com/iquadra-Harsh/wellness-wizard/internal/stats"
	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/metrics"
	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"
	"github.com/iquadra-Harsh/wellness-wizard/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=insights_test

const (
	workoutWindowDays = 30
	workoutInputLimit = 20
	mealWindowDays    = 7
	mealInputLimit    = 30
)

// Generator turns the recent activity of a user into insights.
type Generator interface {
	Generate(ctx context.Context, in InsightInput) ([]GeneratedInsight, error)
}

type workoutsLister interface {
	List(ctx context.Context, userID int, params workouts.ListParams) ([]workouts.Workout, error)
}

type mealsLister interface {
	List(ctx context.Context, userID int, params meals.ListParams) ([]meals.Meal, error)
}

type statsProvider interface {
	WorkoutStats(ctx context.Context, userID, days int) (*stats.WorkoutStats, error)
	MealStats(ctx context.Context, userID, days int) (*stats.MealStats, error)
}

type insightsStore interface {
	Add(ctx context.Context, userID int, generated []GeneratedInsight) ([]Insight, error)
}

type Service struct {
	workouts       workoutsLister
	meals          mealsLister
	stats          statsProvider
	store          insightsStore
	generator      Generator
	metricsManager *metrics.Manager
}

func NewService(
	workouts workoutsLister,
	meals mealsLister,
	stats statsProvider,
	store insightsStore,
	generator Generator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		workouts:       workouts,
		meals:          meals,
		stats:          stats,
		store:          store,
		generator:      generator,
		metricsManager: metricsManager,
	}
}

// Generate collects the recent activity of the user, asks the generator for
// insights and stores every usable one.
func (s *Service) Generate(ctx context.Context, userID int) (_ []Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.insights.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if s.generator == nil {
		return nil, ErrGeneratorDisabled
	}

	in, err := s.gatherInput(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	generated, err := s.generator.Generate(ctx, in)
	if s.metricsManager != nil {
		s.metricsManager.HistInsightsGenerationDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("generate insights: %w", err)
	}

	stored, err := s.store.Add(ctx, userID, generated)
	if err != nil {
		return nil, fmt.Errorf("store insights: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterInsightsGenerated.Add(float64(len(stored)))
	}

	log.Debugf("generated %d insights for user %d", len(stored), userID)
	return stored, nil
}

func (s *Service) gatherInput(ctx context.Context, userID int) (InsightInput, error) {
	now := time.Now()
	workoutsFrom := now.AddDate(0, 0, -workoutWindowDays)
	mealsFrom := now.AddDate(0, 0, -mealWindowDays)

	recentWorkouts, err := s.workouts.List(ctx, userID, workouts.ListParams{
		From:  &workoutsFrom,
		Limit: workoutInputLimit,
	})
	if err != nil {
		return InsightInput{}, fmt.Errorf("recent workouts: %w", err)
	}

	recentMeals, err := s.meals.List(ctx, userID, meals.ListParams{
		From:  &mealsFrom,
		Limit: mealInputLimit,
	})
	if err != nil {
		return InsightInput{}, fmt.Errorf("recent meals: %w", err)
	}

	workoutStats, err := s.stats.WorkoutStats(ctx, userID, workoutWindowDays)
	if err != nil {
		return InsightInput{}, fmt.Errorf("workout stats: %w", err)
	}

	mealStats, err := s.stats.MealStats(ctx, userID, mealWindowDays)
	if err != nil {
		return InsightInput{}, fmt.Errorf("meal stats: %w", err)
	}

	return InsightInput{
		Workouts:     recentWorkouts,
		Meals:        recentMeals,
		WorkoutStats: workoutStats,
		MealStats:    mealStats,
	}, nil
}
