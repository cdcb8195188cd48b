package testinternals

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// AddTestUser inserts a user with fake identity data and returns its id.
func AddTestUser(t *testing.T, dbPool *pgxpool.Pool) int {
	t.Helper()

	var id int
	err := dbPool.QueryRow(
		context.Background(),
		`INSERT INTO app_user (username, email, password_hash, name)
			VALUES ($1, $2, $3, $4)
		RETURNING id`,
		gofakeit.Username()+gofakeit.DigitN(6),
		gofakeit.DigitN(6)+gofakeit.Email(),
		"$2a$04$notarealhashnotarealhashnotarealhashnotarealhashnot",
		gofakeit.Name(),
	).Scan(&id)
	require.NoError(t, err)

	return id
}
