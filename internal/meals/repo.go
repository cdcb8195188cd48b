package meals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const mealColumns = `id, user_id, type, food_items, calories, protein::float8, carbs::float8, fat::float8,
	notes, date, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID int, in MealInput) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := in.Validate(); err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	meal, err := scanMeal(r.db.QueryRow(
		ctx,
		`INSERT INTO meal (user_id, type, food_items, calories, protein, carbs, fat, notes, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+mealColumns,
		userID, in.Type, in.FoodItems, in.Calories, in.Protein, in.Carbs, in.Fat, in.Notes, date,
	))
	if err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}

	span.SetAttributes(attribute.Int("meal.id", meal.ID))
	return meal, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("meal.id", id))

	meal, err := scanMeal(r.db.QueryRow(
		ctx,
		`SELECT `+mealColumns+` FROM meal WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}

	return meal, nil
}

// List returns the meals of the user within the optional date range, newest first.
func (r *Repo) List(ctx context.Context, userID int, params ListParams) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("limit", params.limit()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealColumns+`
			FROM meal
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

	meals := make([]Meal, 0)
	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		meals = append(meals, *meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return meals, nil
}

func (r *Repo) Update(ctx context.Context, id, userID int, patch MealPatch) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("meal.id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	meal, err := scanMeal(r.db.QueryRow(
		ctx,
		`UPDATE meal SET
				type = COALESCE($3, type),
				food_items = COALESCE($4, food_items),
				calories = COALESCE($5, calories),
				protein = COALESCE($6, protein),
				carbs = COALESCE($7, carbs),
				fat = COALESCE($8, fat),
				notes = COALESCE($9, notes),
				date = COALESCE($10, date)
			WHERE id = $1 AND user_id = $2
		RETURNING `+mealColumns,
		id, userID, patch.Type, patch.FoodItems, patch.Calories,
		patch.Protein, patch.Carbs, patch.Fat, patch.Notes, patch.Date,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update meal: %w", err)
	}

	return meal, nil
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("meal.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM meal WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func scanMeal(row pgx.Row) (*Meal, error) {
	var m Meal
	if err := row.Scan(
		&m.ID, &m.UserID, &m.Type, &m.FoodItems, &m.Calories, &m.Protein, &m.Carbs, &m.Fat,
		&m.Notes, &m.Date, &m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}
