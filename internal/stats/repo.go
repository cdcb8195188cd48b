package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func windowStart(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// WorkoutStats aggregates the workouts of the user over the last days.
func (r *Repo) WorkoutStats(ctx context.Context, userID, days int) (_ *WorkoutStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("days", days))

	if err := validateDays(days); err != nil {
		return nil, err
	}

	stats := &WorkoutStats{Days: days}
	if err := r.db.QueryRow(
		ctx,
		`SELECT
				COUNT(*),
				COALESCE(SUM(duration), 0),
				COALESCE(SUM(calories_burned), 0),
				ROUND(COALESCE(AVG(duration), 0))::int
			FROM workout
			WHERE user_id = $1 AND date >= $2`,
		userID, windowStart(time.Now(), days),
	).Scan(&stats.TotalWorkouts, &stats.TotalDuration, &stats.TotalCalories, &stats.AvgDuration); err != nil {
		return nil, fmt.Errorf("aggregate workouts: %w", err)
	}

	return stats, nil
}

// MealStats aggregates the meals of the user over the last days.
func (r *Repo) MealStats(ctx context.Context, userID, days int) (_ *MealStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.meals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("days", days))

	if err := validateDays(days); err != nil {
		return nil, err
	}

	stats := &MealStats{Days: days}
	if err := r.db.QueryRow(
		ctx,
		`SELECT
				COUNT(*),
				COALESCE(SUM(calories), 0),
				ROUND(COALESCE(AVG(calories), 0))::int,
				COALESCE(SUM(protein), 0)::float8,
				COALESCE(SUM(carbs), 0)::float8,
				COALESCE(SUM(fat), 0)::float8
			FROM meal
			WHERE user_id = $1 AND date >= $2`,
		userID, windowStart(time.Now(), days),
	).Scan(
		&stats.TotalMeals, &stats.TotalCalories, &stats.AvgCalories,
		&stats.TotalProtein, &stats.TotalCarbs, &stats.TotalFat,
	); err != nil {
		return nil, fmt.Errorf("aggregate meals: %w", err)
	}

	stats.TotalProtein = round2(stats.TotalProtein)
	stats.TotalCarbs = round2(stats.TotalCarbs)
	stats.TotalFat = round2(stats.TotalFat)
	stats.MacroBreakdown = NewMacroBreakdown(stats.TotalProtein, stats.TotalCarbs, stats.TotalFat)

	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
