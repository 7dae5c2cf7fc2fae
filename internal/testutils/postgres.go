package testutils

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/armybook-api/internal/postgres"
)

// PostgresURLEnv names the variable holding the integration database URL
const PostgresURLEnv = "ARMYBOOK_TEST_DATABASE_URL"

// CreateTestPostgres connects to the integration database with a fresh schema.
// The test is skipped when PostgresURLEnv is unset.
func CreateTestPostgres(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(PostgresURLEnv)
	if url == "" {
		t.Skipf("%s not set, skipping postgres integration test", PostgresURLEnv)
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, url, nil)
	require.NoError(t, err, "failed to open test database")

	_, err = db.ExecContext(ctx, `
		DROP TABLE IF EXISTS army_books_pdfs CASCADE;
		DROP TABLE IF EXISTS army_books CASCADE;
	`)
	require.NoError(t, err, "failed to clean database")
	require.NoError(t, postgres.CreateSchema(ctx, db))

	t.Cleanup(func() {
		_ = db.Close() // nolint:errcheck // safe to ignore in cleanup
	})

	return db
}
