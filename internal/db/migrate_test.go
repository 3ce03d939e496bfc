package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"items", "scheduled_notifications", "preferences"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_items_category",
		"idx_items_repeat_day",
		"idx_scheduled_notifications_item",
		"idx_scheduled_notifications_fire",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_SeedsDefaultPreferences(t *testing.T) {
	db := openTestDB(t)

	var id string
	var notify int
	err := db.QueryRow(`SELECT id, notify_enabled FROM preferences WHERE id = 'default'`).Scan(&id, &notify)
	require.NoError(t, err)
	assert.Equal(t, "default", id)
	assert.Equal(t, 1, notify)
}

func TestMigrate_RejectsInvalidRepeat(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO items (id, subject, repeat, created_at, updated_at)
		VALUES ('x', 'bad', 'Fortnightly', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.Error(t, err, "CHECK constraint should reject unknown repeat values")
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestNotificationsCascadeOnItemDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO items (id, subject, created_at, updated_at)
		VALUES ('it-1', 'Maths', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO scheduled_notifications (id, item_id, fire_at, created_at)
		VALUES ('it-1-reminder-0', 'it-1', '2025-01-01T08:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM items WHERE id = 'it-1'`)
	require.NoError(t, err)

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM scheduled_notifications`).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count, "notifications should cascade with their item")
}
