package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const goalsColumns = `id, user_id, weekly_workout_goal, daily_calorie_goal, hydration_goal,
	weight_goal::float8, target_body_fat::float8, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *Goals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	goals, err := scanGoals(r.db.QueryRow(
		ctx,
		`SELECT `+goalsColumns+` FROM user_goals WHERE user_id = $1`,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoalsNotFound
	}
	if err != nil {
		return nil, err
	}

	return goals, nil
}

// Upsert stores the goals of the user, replacing any previously stored ones.
func (r *Repo) Upsert(ctx context.Context, userID int, in GoalsInput) (_ *Goals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := in.Validate(); err != nil {
		return nil, err
	}

	goals, err := scanGoals(r.db.QueryRow(
		ctx,
		`INSERT INTO user_goals
				(user_id, weekly_workout_goal, daily_calorie_goal, hydration_goal, weight_goal, target_body_fat)
				VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id) DO UPDATE SET
				weekly_workout_goal = EXCLUDED.weekly_workout_goal,
				daily_calorie_goal = EXCLUDED.daily_calorie_goal,
				hydration_goal = EXCLUDED.hydration_goal,
				weight_goal = EXCLUDED.weight_goal,
				target_body_fat = EXCLUDED.target_body_fat,
				updated_at = now()
		RETURNING `+goalsColumns,
		userID, in.WeeklyWorkoutGoal, in.DailyCalorieGoal, in.HydrationGoal, in.WeightGoal, in.TargetBodyFat,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert goals: %w", err)
	}

	return goals, nil
}

func scanGoals(row pgx.Row) (*Goals, error) {
	var g Goals
	if err := row.Scan(
		&g.ID, &g.UserID, &g.WeeklyWorkoutGoal, &g.DailyCalorieGoal, &g.HydrationGoal,
		&g.WeightGoal, &g.TargetBodyFat, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}
