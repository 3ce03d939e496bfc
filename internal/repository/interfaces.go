package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
)

// ScheduledNotification is a pending delivery row owned by the notifier.
// The ID is the engine's stable per-(item, reminder) identifier, so a
// re-plan of the same item overwrites rather than duplicates.
type ScheduledNotification struct {
	ID        string
	ItemID    string
	Title     string
	Body      string
	FireAt    time.Time
	CreatedAt time.Time
}

type ItemRepo interface {
	Create(ctx context.Context, item *domain.ScheduleItem) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error)
	List(ctx context.Context) ([]*domain.ScheduleItem, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]*domain.ScheduleItem, error)
	Update(ctx context.Context, item *domain.ScheduleItem) error
	Delete(ctx context.Context, id string) error
}

type NotificationRepo interface {
	Upsert(ctx context.Context, n *ScheduledNotification) error
	ListDue(ctx context.Context, by time.Time) ([]*ScheduledNotification, error)
	ListByItem(ctx context.Context, itemID string) ([]*ScheduledNotification, error)
	DeleteByItem(ctx context.Context, itemID string) error
	Delete(ctx context.Context, id string) error
	Prune(ctx context.Context, before time.Time) (int64, error)
}

type PreferencesRepo interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Upsert(ctx context.Context, p *domain.Preferences) error
}
