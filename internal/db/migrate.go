package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id         TEXT PRIMARY KEY,
		subject    TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT 'event'
		           CHECK(category IN ('event','task','habit')),
		start_time TEXT NOT NULL DEFAULT '',
		end_time   TEXT NOT NULL DEFAULT '',
		repeat     TEXT NOT NULL DEFAULT 'Never'
		           CHECK(repeat IN ('Never','Daily','Weekly','Bi-weekly','Monthly')),
		repeat_day TEXT NOT NULL DEFAULT '',
		date       TEXT,
		color      TEXT NOT NULL DEFAULT '',
		location   TEXT NOT NULL DEFAULT '',
		notes      TEXT NOT NULL DEFAULT '',
		reminders  TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_category ON items(category)`,
	`CREATE INDEX IF NOT EXISTS idx_items_repeat_day ON items(repeat_day)`,

	`CREATE TABLE IF NOT EXISTS scheduled_notifications (
		id         TEXT PRIMARY KEY,
		item_id    TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		title      TEXT NOT NULL DEFAULT '',
		body       TEXT NOT NULL DEFAULT '',
		fire_at    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_scheduled_notifications_item ON scheduled_notifications(item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_notifications_fire ON scheduled_notifications(fire_at)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		id             TEXT PRIMARY KEY DEFAULT 'default',
		notify_enabled INTEGER NOT NULL DEFAULT 1,
		sound          INTEGER NOT NULL DEFAULT 1,
		reminder_tone  TEXT NOT NULL DEFAULT 'chime',
		default_view   TEXT NOT NULL DEFAULT 'daily'
		               CHECK(default_view IN ('daily','weekly'))
	)`,

	// Seed default preferences
	`INSERT OR IGNORE INTO preferences (id) VALUES ('default')`,
}
