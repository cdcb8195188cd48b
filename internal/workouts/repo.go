package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/internal/db"
	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"
	"github.com/iquadra-Harsh/wellness-wizard/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrSetNotFound     = errors.New("set not found")
)

const workoutColumns = `id, user_id, plan_id, plan_day_id, type, workout_type, duration,
	distance, calories_burned, notes, tags, date, created_at`

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

// Create stores the workout and, for strength workouts, its exercises and sets
// in a single transaction.
func (r *Repo) Create(ctx context.Context, userID int, in WorkoutInput) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("workout.type", string(in.WorkoutType)))

	if err := in.Validate(); err != nil {
		return nil, err
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	var workout *Workout
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if in.PlanID != nil {
			if err := checkPlanDayOwnership(ctx, tx, userID, *in.PlanID, *in.PlanDayID); err != nil {
				return err
			}
		}

		w, err := scanWorkout(tx.QueryRow(
			ctx,
			`INSERT INTO workout
					(user_id, plan_id, plan_day_id, type, workout_type, duration, distance, calories_burned, notes, tags, date)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
				RETURNING `+workoutColumns,
			userID, in.PlanID, in.PlanDayID, in.Type, string(in.WorkoutType), in.Duration,
			in.Distance, in.CaloriesBurned, in.Notes, tags, date,
		))
		if pkg.IsForeignKeyViolationError(err) {
			// plan removed after the ownership check
			return pkg.NewValidationError("planDayId", "unknown plan day")
		}
		if err != nil {
			return fmt.Errorf("insert workout: %w", err)
		}

		if w.WorkoutType == WorkoutTypeStrength && len(in.Exercises) > 0 {
			w.Exercises, err = insertExercises(ctx, tx, w.ID, in.Exercises)
			if err != nil {
				return err
			}
		}

		workout = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return workout, nil
}

// Update applies the patch to the workout owned by userID. Supplying exercises
// for a strength workout replaces all existing exercises and sets. Switching a
// workout to cardio drops its exercises.
func (r *Repo) Update(ctx context.Context, id, userID int, patch WorkoutPatch) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var workoutType *string
	if patch.WorkoutType != nil {
		wt := string(*patch.WorkoutType)
		workoutType = &wt
	}

	var workout *Workout
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		w, err := scanWorkout(tx.QueryRow(
			ctx,
			`UPDATE workout SET
					type = COALESCE($3, type),
					workout_type = COALESCE($4, workout_type),
					duration = COALESCE($5, duration),
					distance = COALESCE($6, distance),
					calories_burned = COALESCE($7, calories_burned),
					notes = COALESCE($8, notes),
					tags = COALESCE($9::text[], tags),
					date = COALESCE($10, date)
				WHERE id = $1 AND user_id = $2
				RETURNING `+workoutColumns,
			id, userID, patch.Type, workoutType, patch.Duration, patch.Distance,
			patch.CaloriesBurned, patch.Notes, patch.Tags, patch.Date,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWorkoutNotFound
		}
		if err != nil {
			return fmt.Errorf("update workout: %w", err)
		}

		switch {
		case patch.ReplacesExercises():
			span.SetAttributes(attribute.Bool("workout.exercises_replaced", true))
			if err := deleteExercises(ctx, tx, w.ID); err != nil {
				return err
			}
			if w.Exercises, err = insertExercises(ctx, tx, w.ID, patch.Exercises); err != nil {
				return err
			}
		case w.WorkoutType == WorkoutTypeStrength:
			exercisesByWorkout, err := loadExercises(ctx, tx, []int{w.ID})
			if err != nil {
				return err
			}
			w.Exercises = exercisesByWorkout[w.ID]
		}

		workout = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	return workout, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))
	span.SetAttributes(attribute.Int("user.id", userID))

	w, err := scanWorkout(r.db.QueryRow(
		ctx,
		`SELECT `+workoutColumns+` FROM workout WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	if w.WorkoutType == WorkoutTypeStrength {
		exercisesByWorkout, err := loadExercises(ctx, r.db, []int{w.ID})
		if err != nil {
			return nil, err
		}
		w.Exercises = exercisesByWorkout[w.ID]
	}

	return w, nil
}

// List returns the workouts of the user within the optional date range, newest first.
func (r *Repo) List(ctx context.Context, userID int, params ListParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("limit", params.limit()))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+workoutColumns+`
			FROM workout
			WHERE user_id = $1
				AND ($2::timestamptz IS NULL OR date >= $2)
				AND ($3::timestamptz IS NULL OR date <= $3)
			ORDER BY date DESC, id DESC
			LIMIT $4`,
		userID, params.From, params.To, params.limit(),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	workouts := make([]Workout, 0)
	var strengthIDs []int
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if w.WorkoutType == WorkoutTypeStrength {
			strengthIDs = append(strengthIDs, w.ID)
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if len(strengthIDs) == 0 {
		return workouts, nil
	}

	exercisesByWorkout, err := loadExercises(ctx, r.db, strengthIDs)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		workouts[i].Exercises = exercisesByWorkout[workouts[i].ID]
	}

	return workouts, nil
}

// Delete removes the workout owned by userID. Exercises and sets are removed by cascade.
func (r *Repo) Delete(ctx context.Context, id, userID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// RemoveSet deletes a single set and renumbers the remaining sets of its
// exercise to 1..N, keeping their relative order.
func (r *Repo) RemoveSet(ctx context.Context, userID, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.removeset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))
	span.SetAttributes(attribute.Int("user.id", userID))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var exerciseID int
		err := tx.QueryRow(
			ctx,
			`DELETE FROM workout_set s
				USING workout_exercise e, workout w
				WHERE s.id = $1
					AND s.exercise_id = e.id
					AND e.workout_id = w.id
					AND w.user_id = $2
				RETURNING s.exercise_id`,
			setID, userID,
		).Scan(&exerciseID)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSetNotFound
		}
		if err != nil {
			return fmt.Errorf("delete set: %w", err)
		}

		if _, err := tx.Exec(
			ctx,
			`UPDATE workout_set s SET set_number = ordered.rn
				FROM (
					SELECT id, ROW_NUMBER() OVER (ORDER BY set_number, id) AS rn
					FROM workout_set
					WHERE exercise_id = $1
				) ordered
				WHERE s.id = ordered.id AND s.set_number <> ordered.rn`,
			exerciseID,
		); err != nil {
			return fmt.Errorf("renumber sets: %w", err)
		}

		return nil
	})
}

func checkPlanDayOwnership(ctx context.Context, q querier, userID, planID, planDayID int) error {
	var found bool
	err := q.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM workout_plan_day d
			JOIN workout_plan p ON p.id = d.plan_id
			WHERE p.id = $1 AND d.id = $2 AND p.user_id = $3
		)`,
		planID, planDayID, userID,
	).Scan(&found)
	if err != nil {
		return fmt.Errorf("check plan day: %w", err)
	}
	if !found {
		return pkg.NewValidationError("planDayId", "unknown plan day")
	}
	return nil
}

func insertExercises(ctx context.Context, q querier, workoutID int, inputs []ExerciseInput) ([]Exercise, error) {
	exercises := make([]Exercise, 0, len(inputs))
	for _, in := range inputs {
		e := Exercise{
			WorkoutID: workoutID,
			Name:      in.Name,
			Category:  in.Category,
			Notes:     in.Notes,
			Sets:      make([]Set, 0, len(in.Sets)),
		}
		if err := q.QueryRow(
			ctx,
			`INSERT INTO workout_exercise (workout_id, name, category, notes)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
			workoutID, in.Name, in.Category, in.Notes,
		).Scan(&e.ID); err != nil {
			return nil, fmt.Errorf("insert exercise %s: %w", in.Name, err)
		}

		for i, setIn := range in.Sets {
			s := Set{
				ExerciseID: e.ID,
				SetNumber:  i + 1,
				Reps:       setIn.Reps,
				Weight:     setIn.Weight,
				RestTime:   setIn.RestTime,
				RPE:        setIn.RPE,
			}
			if setIn.IsWarmup != nil {
				s.IsWarmup = *setIn.IsWarmup
			}
			if err := q.QueryRow(
				ctx,
				`INSERT INTO workout_set (exercise_id, set_number, reps, weight, is_warmup, rest_time, rpe)
					VALUES ($1, $2, $3, $4, $5, $6, $7)
					RETURNING id`,
				s.ExerciseID, s.SetNumber, s.Reps, s.Weight, s.IsWarmup, s.RestTime, s.RPE,
			).Scan(&s.ID); err != nil {
				return nil, fmt.Errorf("insert set %d of exercise %s: %w", s.SetNumber, in.Name, err)
			}
			e.Sets = append(e.Sets, s)
		}

		exercises = append(exercises, e)
	}
	return exercises, nil
}

func deleteExercises(ctx context.Context, q querier, workoutID int) error {
	if _, err := q.Exec(
		ctx,
		`DELETE FROM workout_set
			WHERE exercise_id IN (SELECT id FROM workout_exercise WHERE workout_id = $1)`,
		workoutID,
	); err != nil {
		return fmt.Errorf("delete sets: %w", err)
	}
	if _, err := q.Exec(
		ctx,
		`DELETE FROM workout_exercise WHERE workout_id = $1`,
		workoutID,
	); err != nil {
		return fmt.Errorf("delete exercises: %w", err)
	}
	return nil
}

// loadExercises returns the exercises (with sets ordered by set number) of the
// given workouts, keyed by workout id.
func loadExercises(ctx context.Context, q querier, workoutIDs []int) (map[int][]Exercise, error) {
	rows, err := q.Query(
		ctx,
		`SELECT id, workout_id, name, category, notes
			FROM workout_exercise
			WHERE workout_id = ANY($1)
			ORDER BY workout_id, id`,
		workoutIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}

	var exercises []Exercise
	var exerciseIDs []int
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.Category, &e.Notes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		e.Sets = make([]Set, 0)
		exercises = append(exercises, e)
		exerciseIDs = append(exerciseIDs, e.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise rows: %w", err)
	}

	result := make(map[int][]Exercise, len(workoutIDs))
	if len(exercises) == 0 {
		return result, nil
	}

	setRows, err := q.Query(
		ctx,
		`SELECT id, exercise_id, set_number, reps, weight, is_warmup, rest_time, rpe
			FROM workout_set
			WHERE exercise_id = ANY($1)
			ORDER BY exercise_id, set_number`,
		exerciseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer setRows.Close()

	setsByExercise := make(map[int][]Set)
	for setRows.Next() {
		var s Set
		if err := setRows.Scan(
			&s.ID, &s.ExerciseID, &s.SetNumber, &s.Reps, &s.Weight, &s.IsWarmup, &s.RestTime, &s.RPE,
		); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		setsByExercise[s.ExerciseID] = append(setsByExercise[s.ExerciseID], s)
	}
	if err := setRows.Err(); err != nil {
		return nil, fmt.Errorf("set rows: %w", err)
	}

	for _, e := range exercises {
		if sets, ok := setsByExercise[e.ID]; ok {
			e.Sets = sets
		}
		result[e.WorkoutID] = append(result[e.WorkoutID], e)
	}

	return result, nil
}

func scanWorkout(row pgx.Row) (*Workout, error) {
	var w Workout
	var workoutType string
	if err := row.Scan(
		&w.ID, &w.UserID, &w.PlanID, &w.PlanDayID, &w.Type, &workoutType, &w.Duration,
		&w.Distance, &w.CaloriesBurned, &w.Notes, &w.Tags, &w.Date, &w.CreatedAt,
	); err != nil {
		return nil, err
	}
	w.WorkoutType = WorkoutType(workoutType)
	if w.Tags == nil {
		w.Tags = []string{}
	}
	return &w, nil
}
