package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT '',
		fte REAL NOT NULL DEFAULT 1.0,
		base_velocity REAL NOT NULL DEFAULT 6.0,
		hourly_rate REAL NOT NULL DEFAULT 95.37,
		working_weekdays TEXT NOT NULL DEFAULT '1,2,3,4,5',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		member_id TEXT REFERENCES members(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		is_national INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_holidays_member ON holidays(member_id)`,
	`CREATE INDEX IF NOT EXISTS idx_holidays_dates ON holidays(start_date, end_date)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
