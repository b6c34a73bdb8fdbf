//go:build integration

// Package dbtest starts a disposable PostgreSQL container with the schema
// applied, for repository integration tests.
package dbtest

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/JaimeStill/taxi-service/internal/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Image is the PostgreSQL image used for tests.
const Image = "postgres:17-alpine"

// Open starts a container, migrates it, and returns a connection. The
// container is terminated when the test ends.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		Image,
		postgres.WithDatabase("taxi_test"),
		postgres.WithUsername("taxi"),
		postgres.WithPassword("taxi"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	logger := slog.New(slog.DiscardHandler)
	if err := migrations.Up(dsn, logger); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// Logger returns a logger that discards output.
func Logger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
