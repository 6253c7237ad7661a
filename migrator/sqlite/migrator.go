// Package sqlite holds the bot state schema and applies it on start.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var migrations embed.FS

// Migrate brings the channels and scheduler_configs tables up to date.
func Migrate(db *sql.DB) error {
	m := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := m.Migrate(migrations, "sql"); err != nil {
		return fmt.Errorf("failed to migrate bot state: %w", err)
	}
	return nil
}
