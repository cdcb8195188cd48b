package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/internal/db"
	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const planColumns = `id, user_id, name, description, days_per_week, current_day_index,
	last_workout_date, is_active, created_at`

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create deactivates all other plans of the user and stores the new plan as
// the active one, with days indexed by their position.
func (r *Repo) Create(ctx context.Context, userID int, in PlanInput) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("plan.days", len(in.Days)))

	if err := in.Validate(); err != nil {
		return nil, err
	}

	var plan *Plan
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := deactivatePlans(ctx, tx, userID, 0); err != nil {
			return err
		}

		p, err := scanPlan(tx.QueryRow(
			ctx,
			`INSERT INTO workout_plan (user_id, name, description, days_per_week, current_day_index, is_active)
				VALUES ($1, $2, $3, $4, 0, TRUE)
			RETURNING `+planColumns,
			userID, in.Name, in.Description, in.DaysPerWeek,
		))
		if err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}

		if p.Days, err = insertDays(ctx, tx, p.ID, in.Days); err != nil {
			return err
		}

		plan = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("plan.id", plan.ID))
	return plan, nil
}

func (r *Repo) Get(ctx context.Context, userID, planID int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("plan.id", planID))

	return getPlanWithDays(ctx, r.db,
		`SELECT `+planColumns+` FROM workout_plan WHERE id = $1 AND user_id = $2`,
		planID, userID,
	)
}

func (r *Repo) GetActive(ctx context.Context, userID int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.getactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return getPlanWithDays(ctx, r.db,
		`SELECT `+planColumns+` FROM workout_plan WHERE user_id = $1 AND is_active`,
		userID,
	)
}

// NextDay returns the day the user should perform next in the active plan.
func (r *Repo) NextDay(ctx context.Context, userID int) (_ *PlanDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.nextday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	plan, err := r.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("plan.id", plan.ID))
	span.SetAttributes(attribute.Int("plan.current_day_index", plan.CurrentDayIndex))

	return dayAt(plan.Days, plan.CurrentDayIndex)
}

// Advance moves the day cursor of the plan one step forward, wrapping after the
// last day. A plan that does not exist (or is not owned by the user) is left
// alone and no error is returned.
func (r *Repo) Advance(ctx context.Context, userID, planID int) (advanced bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.advance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("plan.id", planID))

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var current int
		err := tx.QueryRow(
			ctx,
			`SELECT current_day_index FROM workout_plan WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			planID, userID,
		).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetAttributes(attribute.Bool("plan.absent", true))
			return nil
		}
		if err != nil {
			return fmt.Errorf("lock plan: %w", err)
		}

		var dayCount int
		if err := tx.QueryRow(
			ctx,
			`SELECT COUNT(*) FROM workout_plan_day WHERE plan_id = $1`,
			planID,
		).Scan(&dayCount); err != nil {
			return fmt.Errorf("count plan days: %w", err)
		}

		next, err := NextDayIndex(current, dayCount)
		if err != nil {
			return err
		}
		span.SetAttributes(attribute.Int("plan.next_day_index", next))

		if _, err := tx.Exec(
			ctx,
			`UPDATE workout_plan SET current_day_index = $2, last_workout_date = $3 WHERE id = $1`,
			planID, next, time.Now(),
		); err != nil {
			return fmt.Errorf("update plan cursor: %w", err)
		}
		advanced = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return advanced, nil
}

// Update applies the patch to a plan owned by the user. Activating a plan
// deactivates the others. Supplied days replace the existing ones.
func (r *Repo) Update(ctx context.Context, userID, planID int, patch PlanPatch) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("plan.id", planID))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var plan *Plan
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if patch.IsActive != nil && *patch.IsActive {
			if err := deactivatePlans(ctx, tx, userID, planID); err != nil {
				return err
			}
		}

		p, err := scanPlan(tx.QueryRow(
			ctx,
			`UPDATE workout_plan SET
					name = COALESCE($3, name),
					description = COALESCE($4, description),
					days_per_week = COALESCE($5, days_per_week),
					is_active = COALESCE($6, is_active)
				WHERE id = $1 AND user_id = $2
			RETURNING `+planColumns,
			planID, userID, patch.Name, patch.Description, patch.DaysPerWeek, patch.IsActive,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPlanNotFound
		}
		if err != nil {
			return fmt.Errorf("update plan: %w", err)
		}

		if patch.Days != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM workout_plan_day WHERE plan_id = $1`, p.ID); err != nil {
				return fmt.Errorf("delete plan days: %w", err)
			}
			if p.Days, err = insertDays(ctx, tx, p.ID, patch.Days); err != nil {
				return err
			}
		} else if p.Days, err = loadDays(ctx, tx, p.ID); err != nil {
			return err
		}

		plan = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func (r *Repo) Delete(ctx context.Context, userID, planID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("plan.id", planID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_plan WHERE id = $1 AND user_id = $2`,
		planID, userID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// List returns all plans of the user with their days, newest first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+planColumns+` FROM workout_plan WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	plans := make([]Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		plans = append(plans, *p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range plans {
		if plans[i].Days, err = loadDays(ctx, r.db, plans[i].ID); err != nil {
			return nil, err
		}
	}

	return plans, nil
}

// deactivatePlans clears the active flag of every plan of the user except keepID.
func deactivatePlans(ctx context.Context, q querier, userID, keepID int) error {
	if _, err := q.Exec(
		ctx,
		`UPDATE workout_plan SET is_active = FALSE WHERE user_id = $1 AND is_active AND id <> $2`,
		userID, keepID,
	); err != nil {
		return fmt.Errorf("deactivate plans: %w", err)
	}
	return nil
}

func getPlanWithDays(ctx context.Context, q querier, sql string, args ...any) (*Plan, error) {
	p, err := scanPlan(q.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.Days, err = loadDays(ctx, q, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func insertDays(ctx context.Context, q querier, planID int, inputs []PlanDayInput) ([]PlanDay, error) {
	days := make([]PlanDay, 0, len(inputs))
	for i, in := range inputs {
		d := PlanDay{
			PlanID:       planID,
			DayIndex:     i,
			Name:         in.Name,
			Description:  in.Description,
			MuscleGroups: in.MuscleGroups,
			Exercises:    in.Exercises,
			RestDay:      in.RestDay,
		}
		if d.MuscleGroups == nil {
			d.MuscleGroups = []string{}
		}

		var exercises []byte
		if hasPayload(in.Exercises) {
			exercises = in.Exercises
		} else {
			d.Exercises = nil
		}
		if err := q.QueryRow(
			ctx,
			`INSERT INTO workout_plan_day (plan_id, day_index, name, description, muscle_groups, exercises, rest_day)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			planID, d.DayIndex, d.Name, d.Description, d.MuscleGroups, exercises, d.RestDay,
		).Scan(&d.ID); err != nil {
			return nil, fmt.Errorf("insert plan day %d: %w", i, err)
		}
		days = append(days, d)
	}
	return days, nil
}

func hasPayload(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func loadDays(ctx context.Context, q querier, planID int) ([]PlanDay, error) {
	rows, err := q.Query(
		ctx,
		`SELECT id, plan_id, day_index, name, description, muscle_groups, exercises, rest_day
			FROM workout_plan_day
			WHERE plan_id = $1
			ORDER BY day_index`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("query plan days: %w", err)
	}
	defer rows.Close()

	days := make([]PlanDay, 0)
	for rows.Next() {
		var d PlanDay
		var exercises []byte
		if err := rows.Scan(
			&d.ID, &d.PlanID, &d.DayIndex, &d.Name, &d.Description, &d.MuscleGroups, &exercises, &d.RestDay,
		); err != nil {
			return nil, fmt.Errorf("scan plan day: %w", err)
		}
		if len(exercises) > 0 {
			d.Exercises = exercises
		}
		if d.MuscleGroups == nil {
			d.MuscleGroups = []string{}
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plan day rows: %w", err)
	}

	return days, nil
}

func scanPlan(row pgx.Row) (*Plan, error) {
	var p Plan
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.DaysPerWeek, &p.CurrentDayIndex,
		&p.LastWorkoutDate, &p.IsActive, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.Days = []PlanDay{}
	return &p, nil
}
