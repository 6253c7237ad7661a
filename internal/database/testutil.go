package database

import (
	"database/sql"
	"testing"

	"github.com/diegoclair/meal-schedule-bot/migrator/sqlite"
	"github.com/stretchr/testify/require"
)

// SetupTestDB creates a migrated in-memory SQLite database that is closed
// when the test ends.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to create test database")

	// every new connection would see its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	err = sqlite.Migrate(sqlDB)
	require.NoError(t, err, "Failed to run migrations on test database")

	t.Cleanup(func() {
		require.NoError(t, sqlDB.Close(), "Failed to close test database")
	})
	return &DB{conn: sqlDB}
}
