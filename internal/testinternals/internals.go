package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/iquadra-Harsh/wellness-wizard/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const testDBName = "wellness_wizard_test"

// NewTestDBPool returns a migrated pool for repo level integration tests.
// POSTGRES_HOST points the tests at a running instance, otherwise a throwaway
// postgres container is started with dockertest.
func NewTestDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	params := db.NewDBPoolParams{
		DBHost: os.Getenv("POSTGRES_HOST"),
		DBPort: "5432",
		DBName: testDBName,
	}

	if params.DBHost == "" {
		params.DBHost = "localhost"
		params.DBPort = startPostgresContainer(t)
	}
	t.Logf("using postgres host: %s:%s", params.DBHost, params.DBPort)

	dbPool, err := db.NewDBPool(ctx, params)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, dbPool))

	t.Cleanup(dbPool.Close)
	return dbPool
}

func startPostgresContainer(t *testing.T) string {
	t.Helper()

	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not create new dockertest pool")
	require.NoError(t, dockerPool.Client.Ping(), "could not ping docker")

	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "dockerpool run postgres")
	t.Cleanup(func() {
		if err := pgResource.Close(); err != nil {
			t.Logf("postgres teardown: %s", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, testDBName)
	err = dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	})
	require.NoError(t, err, "connect to db")

	return pgPort
}

// TruncateAll removes all rows from the user owned and reference tables.
func TruncateAll(t *testing.T, dbPool *pgxpool.Pool) {
	t.Helper()
	_, err := dbPool.Exec(
		context.Background(),
		`TRUNCATE app_user, exercise_database RESTART IDENTITY CASCADE`,
	)
	require.NoError(t, err)
}
