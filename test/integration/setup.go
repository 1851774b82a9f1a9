//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	// Migration dir depends on where the test binary runs from.
	paths := []string{
		filepath.Join("..", "..", "migrations"),
		filepath.Join("..", "migrations"),
		"migrations",
	}

	var dir string
	for _, path := range paths {
		if _, err := os.Stat(filepath.Join(path, "00001_init.sql")); err == nil {
			dir = path
			break
		}
	}
	require.NotEmpty(t, dir, "migrations directory not found")

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, dir))
}

func seedUser(t *testing.T, db *sql.DB, name, role string) int {
	var id int
	err := db.QueryRow(
		"INSERT INTO users (name, role) VALUES ($1, $2) RETURNING user_id",
		name, role,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
