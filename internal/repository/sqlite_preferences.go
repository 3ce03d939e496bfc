package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/agenda/internal/db"
	"github.com/alexanderramin/agenda/internal/domain"
)

// SQLitePreferencesRepo implements PreferencesRepo using a SQLite database.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context) (*domain.Preferences, error) {
	query := `SELECT id, notify_enabled, sound, reminder_tone, default_view
		FROM preferences WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.Preferences
	var notifyInt, soundInt int
	err := row.Scan(&p.ID, &notifyInt, &soundInt, &p.ReminderTone, &p.DefaultView)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("preferences: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preferences: %w", err)
	}
	p.NotifyEnabled = intToBool(notifyInt)
	p.Sound = intToBool(soundInt)
	return &p, nil
}

func (r *SQLitePreferencesRepo) Upsert(ctx context.Context, p *domain.Preferences) error {
	query := `INSERT OR REPLACE INTO preferences (id, notify_enabled, sound, reminder_tone, default_view)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		boolToInt(p.NotifyEnabled),
		boolToInt(p.Sound),
		p.ReminderTone,
		p.DefaultView,
	)
	if err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}
