package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const Schema = `
CREATE TABLE IF NOT EXISTS app_user
(
    id            SERIAL PRIMARY KEY,
    username      VARCHAR     NOT NULL UNIQUE,
    email         VARCHAR     NOT NULL UNIQUE,
    password_hash VARCHAR     NOT NULL,
    name          VARCHAR     NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_plan
(
    id                SERIAL PRIMARY KEY,
    user_id           INTEGER     NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
    name              VARCHAR     NOT NULL,
    description       TEXT        NOT NULL DEFAULT '',
    days_per_week     INTEGER     NOT NULL DEFAULT 0,
    current_day_index INTEGER     NOT NULL DEFAULT 0,
    last_workout_date TIMESTAMPTZ,
    is_active         BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS ix_workout_plan_user_id ON workout_plan (user_id);
CREATE UNIQUE INDEX IF NOT EXISTS ux_workout_plan_user_active ON workout_plan (user_id) WHERE is_active;

CREATE TABLE IF NOT EXISTS workout_plan_day
(
    id            SERIAL PRIMARY KEY,
    plan_id       INTEGER NOT NULL REFERENCES workout_plan (id) ON DELETE CASCADE,
    day_index     INTEGER NOT NULL,
    name          VARCHAR NOT NULL,
    description   TEXT    NOT NULL DEFAULT '',
    muscle_groups TEXT[]  NOT NULL DEFAULT '{}',
    exercises     JSONB,
    rest_day      BOOLEAN NOT NULL DEFAULT FALSE,
    UNIQUE (plan_id, day_index)
);

CREATE TABLE IF NOT EXISTS workout
(
    id              SERIAL PRIMARY KEY,
    user_id         INTEGER     NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
    plan_id         INTEGER REFERENCES workout_plan (id) ON DELETE SET NULL,
    plan_day_id     INTEGER REFERENCES workout_plan_day (id) ON DELETE SET NULL,
    type            VARCHAR     NOT NULL,
    workout_type    VARCHAR     NOT NULL CHECK (workout_type IN ('strength', 'cardio')),
    duration        INTEGER     NOT NULL CHECK (duration > 0),
    distance        NUMERIC,
    calories_burned INTEGER,
    notes           TEXT        NOT NULL DEFAULT '',
    tags            TEXT[]      NOT NULL DEFAULT '{}',
    date            TIMESTAMPTZ NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS ix_workout_user_date ON workout (user_id, date);

CREATE TABLE IF NOT EXISTS workout_exercise
(
    id         SERIAL PRIMARY KEY,
    workout_id INTEGER NOT NULL REFERENCES workout (id) ON DELETE CASCADE,
    name       VARCHAR NOT NULL,
    category   VARCHAR,
    notes      TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS ix_workout_exercise_workout_id ON workout_exercise (workout_id);

CREATE TABLE IF NOT EXISTS workout_set
(
    id          SERIAL PRIMARY KEY,
    exercise_id INTEGER NOT NULL REFERENCES workout_exercise (id) ON DELETE CASCADE,
    set_number  INTEGER NOT NULL CHECK (set_number > 0),
    reps        INTEGER NOT NULL CHECK (reps >= 0),
    weight      NUMERIC(7, 2),
    is_warmup   BOOLEAN NOT NULL DEFAULT FALSE,
    rest_time   INTEGER,
    rpe         NUMERIC(3, 1)
);

CREATE INDEX IF NOT EXISTS ix_workout_set_exercise_id ON workout_set (exercise_id);

CREATE TABLE IF NOT EXISTS meal
(
    id         SERIAL PRIMARY KEY,
    user_id    INTEGER     NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
    type       VARCHAR     NOT NULL,
    food_items TEXT        NOT NULL,
    calories   INTEGER     NOT NULL CHECK (calories >= 0),
    protein    NUMERIC(7, 2),
    carbs      NUMERIC(7, 2),
    fat        NUMERIC(7, 2),
    notes      TEXT        NOT NULL DEFAULT '',
    date       TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS ix_meal_user_date ON meal (user_id, date);

CREATE TABLE IF NOT EXISTS insight
(
    id         SERIAL PRIMARY KEY,
    user_id    INTEGER     NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
    type       VARCHAR     NOT NULL CHECK (type IN ('pattern', 'recommendation', 'achievement')),
    title      VARCHAR     NOT NULL,
    content    TEXT        NOT NULL,
    data       JSONB,
    is_read    BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS ix_insight_user_created_at ON insight (user_id, created_at);

CREATE TABLE IF NOT EXISTS user_goals
(
    id                  SERIAL PRIMARY KEY,
    user_id             INTEGER     NOT NULL UNIQUE REFERENCES app_user (id) ON DELETE CASCADE,
    weekly_workout_goal INTEGER     NOT NULL,
    daily_calorie_goal  INTEGER     NOT NULL,
    hydration_goal      INTEGER     NOT NULL,
    weight_goal         NUMERIC(6, 2),
    target_body_fat     NUMERIC(5, 2),
    created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercise_database
(
    id                VARCHAR PRIMARY KEY,
    name              VARCHAR NOT NULL,
    force             VARCHAR,
    level             VARCHAR,
    mechanic          VARCHAR,
    equipment         VARCHAR,
    primary_muscles   TEXT[]  NOT NULL DEFAULT '{}',
    secondary_muscles TEXT[]  NOT NULL DEFAULT '{}',
    instructions      TEXT[]  NOT NULL DEFAULT '{}',
    category          VARCHAR NOT NULL DEFAULT '',
    images            TEXT[]  NOT NULL DEFAULT '{}'
);

CREATE INDEX IF NOT EXISTS ix_exercise_database_name ON exercise_database (name);
`

// Migrate ensures all tables and indexes exist. Safe to run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debugln("db schema migrated")
	return nil
}
