package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent DDL statements run in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_items (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		company     TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		deadline    TEXT NOT NULL,
		status      TEXT NOT NULL
		            CHECK(status IN ('upcoming','ongoing','completed')),
		payment     TEXT NOT NULL DEFAULT '',
		progress    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_items_status ON work_items(status)`,
	`CREATE INDEX IF NOT EXISTS idx_work_items_deadline ON work_items(deadline)`,

	// Single-row alerting policy; id is fixed at 1.
	`CREATE TABLE IF NOT EXISTS settings (
		id                      INTEGER PRIMARY KEY CHECK(id = 1),
		urgent_threshold_days   INTEGER NOT NULL,
		reminder_threshold_days INTEGER NOT NULL,
		upcoming_threshold_days INTEGER NOT NULL,
		updated_at              TEXT NOT NULL
	)`,

	// Read/dismissed flags per composite notification key. Keys are
	// "{bucket}-{work_item_id}", so escalation naturally starts fresh.
	`CREATE TABLE IF NOT EXISTS notification_state (
		key          TEXT PRIMARY KEY,
		work_item_id TEXT NOT NULL REFERENCES work_items(id) ON DELETE CASCADE,
		is_read      INTEGER NOT NULL DEFAULT 0,
		is_dismissed INTEGER NOT NULL DEFAULT 0,
		updated_at   TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
