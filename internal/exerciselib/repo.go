package exerciselib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/internal/db"
	"github.com/iquadra-Harsh/wellness-wizard/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	megabyte = 1024 * 1024
	// catalog rows only change on seeding
	cacheExpireSeconds = int(time.Hour / time.Second)
)

const exerciseColumns = `id, name, force, level, mechanic, equipment, primary_muscles,
	secondary_muscles, instructions, category, images`

type Repo struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
}

// NewRepo creates the catalog repo with an in-process cache of cacheSizeMB
// megabytes for single exercise lookups.
func NewRepo(db *pgxpool.Pool, cacheSizeMB int) *Repo {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}
	return &Repo{
		db:    db,
		cache: freecache.NewCache(cacheSizeMB * megabyte),
	}
}

// Search filters the catalog. All supplied filters must match. Results are
// ordered by name.
func (r *Repo) Search(ctx context.Context, params SearchParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exerciselib.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("search", params.Search))
	span.SetAttributes(attribute.String("muscle", params.PrimaryMuscle))
	span.SetAttributes(attribute.Int("limit", params.limit()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM exercise_database
			WHERE ($1::text = '' OR name ILIKE '%' || $1::text || '%' OR id ILIKE '%' || $1::text || '%')
				AND ($2::text = '' OR $2::text = ANY(primary_muscles))
				AND ($3::text = '' OR equipment = $3::text)
				AND ($4::text = '' OR level = $4::text)
			ORDER BY name
			LIMIT $5`,
		escapeLike(params.Search), params.PrimaryMuscle, params.Equipment, params.Level, params.limit(),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("results", len(exercises)))
	return exercises, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exerciselib.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	cacheKey := []byte("exercise::" + id)
	if cached, err := r.cache.Get(cacheKey); err == nil {
		var e Exercise
		if err := json.Unmarshal(cached, &e); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &e, nil
		}
		log.Errorf("failed to unmarshal cached exercise %s: %s", id, err)
	}

	e, err := scanExercise(r.db.QueryRow(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise_database WHERE id = $1`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}

	if exerciseBytes, err := json.Marshal(e); err == nil {
		if err := r.cache.Set(cacheKey, exerciseBytes, cacheExpireSeconds); err != nil {
			log.Errorf("failed to cache exercise %s: %s", id, err)
		}
	}

	return e, nil
}

// Seed upserts the exercises of a free-exercise-db JSON catalog and returns
// how many were stored.
func (r *Repo) Seed(ctx context.Context, catalog io.Reader) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exerciselib.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises, err := DecodeCatalog(catalog)
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int("exercises", len(exercises)))

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, e := range exercises {
			batch.Queue(
				`INSERT INTO exercise_database
						(id, name, force, level, mechanic, equipment, primary_muscles,
						secondary_muscles, instructions, category, images)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
					ON CONFLICT (id) DO UPDATE SET
						name = EXCLUDED.name,
						force = EXCLUDED.force,
						level = EXCLUDED.level,
						mechanic = EXCLUDED.mechanic,
						equipment = EXCLUDED.equipment,
						primary_muscles = EXCLUDED.primary_muscles,
						secondary_muscles = EXCLUDED.secondary_muscles,
						instructions = EXCLUDED.instructions,
						category = EXCLUDED.category,
						images = EXCLUDED.images`,
				e.ID, e.Name, e.Force, e.Level, e.Mechanic, e.Equipment, e.PrimaryMuscles,
				e.SecondaryMuscles, e.Instructions, e.Category, e.Images,
			)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return 0, fmt.Errorf("seed exercises: %w", err)
	}

	r.cache.Clear()
	log.Infof("exercise library seeded with %d exercises", len(exercises))
	return len(exercises), nil
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	var e Exercise
	if err := row.Scan(
		&e.ID, &e.Name, &e.Force, &e.Level, &e.Mechanic, &e.Equipment, &e.PrimaryMuscles,
		&e.SecondaryMuscles, &e.Instructions, &e.Category, &e.Images,
	); err != nil {
		return nil, err
	}
	e.PrimaryMuscles = nonNil(e.PrimaryMuscles)
	e.SecondaryMuscles = nonNil(e.SecondaryMuscles)
	e.Instructions = nonNil(e.Instructions)
	e.Images = nonNil(e.Images)
	return &e, nil
}
