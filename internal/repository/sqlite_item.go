package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/agenda/internal/db"
	"github.com/alexanderramin/agenda/internal/domain"
)

const dateLayout = "2006-01-02"

// itemColumns is the canonical SELECT column list for items.
const itemColumns = `id, subject, category, start_time, end_time,
		repeat, repeat_day, date, color, location, notes, reminders,
		created_at, updated_at`

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db db.DBTX
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(conn db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: conn}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, item *domain.ScheduleItem) error {
	reminders, err := marshalReminders(item.Reminders)
	if err != nil {
		return err
	}
	query := `INSERT INTO items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		item.ID,
		item.Subject,
		string(item.Category),
		item.StartTime,
		item.EndTime,
		string(item.Repeat),
		item.RepeatDay,
		nullableTimeToString(item.Date, dateLayout),
		item.Color,
		item.Location,
		item.Notes,
		reminders,
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanItem(row)
}

func (r *SQLiteItemRepo) List(ctx context.Context) ([]*domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY start_time, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteItemRepo) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE category = ? ORDER BY start_time, created_at`
	rows, err := r.db.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("listing items by category: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteItemRepo) Update(ctx context.Context, item *domain.ScheduleItem) error {
	reminders, err := marshalReminders(item.Reminders)
	if err != nil {
		return err
	}
	query := `UPDATE items SET subject = ?, category = ?, start_time = ?, end_time = ?,
		repeat = ?, repeat_day = ?, date = ?, color = ?, location = ?, notes = ?,
		reminders = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		item.Subject,
		string(item.Category),
		item.StartTime,
		item.EndTime,
		string(item.Repeat),
		item.RepeatDay,
		nullableTimeToString(item.Date, dateLayout),
		item.Color,
		item.Location,
		item.Notes,
		reminders,
		item.UpdatedAt.Format(time.RFC3339),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteItemRepo) scanItem(row rowScanner) (*domain.ScheduleItem, error) {
	var item domain.ScheduleItem
	var categoryStr, repeatStr, remindersJSON string
	var dateStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&item.ID, &item.Subject, &categoryStr, &item.StartTime, &item.EndTime,
		&repeatStr, &item.RepeatDay, &dateStr, &item.Color, &item.Location,
		&item.Notes, &remindersJSON, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	item.Category = domain.Category(categoryStr)
	item.Repeat = domain.Repeat(repeatStr)
	item.Date = parseNullableTime(dateStr, dateLayout)

	if err := json.Unmarshal([]byte(remindersJSON), &item.Reminders); err != nil {
		return nil, fmt.Errorf("parsing reminders: %w", err)
	}

	var parseErr error
	item.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	item.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &item, nil
}

func (r *SQLiteItemRepo) scanItems(rows *sql.Rows) ([]*domain.ScheduleItem, error) {
	var items []*domain.ScheduleItem
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// marshalReminders serializes the ordered reminder list for the JSON column.
// A nil slice stores as the empty list so scans never see NULL.
func marshalReminders(reminders []domain.Reminder) (string, error) {
	if reminders == nil {
		return "[]", nil
	}
	b, err := json.Marshal(reminders)
	if err != nil {
		return "", fmt.Errorf("serializing reminders: %w", err)
	}
	return string(b), nil
}
