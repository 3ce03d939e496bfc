package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/agenda/internal/db"
)

// notificationColumns is the canonical SELECT column list for scheduled_notifications.
const notificationColumns = `id, item_id, title, body, fire_at, created_at`

// SQLiteNotificationRepo implements NotificationRepo using a SQLite database.
type SQLiteNotificationRepo struct {
	db db.DBTX
}

// NewSQLiteNotificationRepo creates a new SQLiteNotificationRepo.
func NewSQLiteNotificationRepo(conn db.DBTX) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: conn}
}

func (r *SQLiteNotificationRepo) Upsert(ctx context.Context, n *ScheduledNotification) error {
	query := `INSERT OR REPLACE INTO scheduled_notifications (` + notificationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.ItemID,
		n.Title,
		n.Body,
		n.FireAt.UTC().Format(time.RFC3339),
		n.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting scheduled notification: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) ListDue(ctx context.Context, by time.Time) ([]*ScheduledNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM scheduled_notifications
		WHERE fire_at <= ? ORDER BY fire_at`
	rows, err := r.db.QueryContext(ctx, query, by.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing due notifications: %w", err)
	}
	defer rows.Close()
	return r.scanNotifications(rows)
}

func (r *SQLiteNotificationRepo) ListByItem(ctx context.Context, itemID string) ([]*ScheduledNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM scheduled_notifications
		WHERE item_id = ? ORDER BY fire_at`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications by item: %w", err)
	}
	defer rows.Close()
	return r.scanNotifications(rows)
}

func (r *SQLiteNotificationRepo) DeleteByItem(ctx context.Context, itemID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM scheduled_notifications WHERE item_id = ?`, itemID); err != nil {
		return fmt.Errorf("deleting notifications by item: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM scheduled_notifications WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting scheduled notification: %w", err)
	}
	return nil
}

// Prune removes rows whose fire time fell before the cutoff. Rows that
// linger past the grace window can no longer be delivered meaningfully.
func (r *SQLiteNotificationRepo) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM scheduled_notifications WHERE fire_at < ?`,
		before.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("pruning scheduled notifications: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteNotificationRepo) scanNotifications(rows *sql.Rows) ([]*ScheduledNotification, error) {
	var result []*ScheduledNotification
	for rows.Next() {
		var n ScheduledNotification
		var fireAtStr, createdAtStr string
		if err := rows.Scan(&n.ID, &n.ItemID, &n.Title, &n.Body, &fireAtStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning scheduled notification: %w", err)
		}
		var parseErr error
		n.FireAt, parseErr = time.Parse(time.RFC3339, fireAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing fire_at: %w", parseErr)
		}
		n.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scheduled notifications: %w", err)
	}
	return result, nil
}
