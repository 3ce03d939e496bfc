package service

import (
	"context"
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
)

type ItemService interface {
	Create(ctx context.Context, item *domain.ScheduleItem) error
	// ImportAll creates a batch of items atomically.
	ImportAll(ctx context.Context, items []*domain.ScheduleItem) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error)
	List(ctx context.Context) ([]*domain.ScheduleItem, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]*domain.ScheduleItem, error)
	Update(ctx context.Context, item *domain.ScheduleItem) error
	Delete(ctx context.Context, id string) error
}

// AgendaEntry is one item on a day board together with its display status.
type AgendaEntry struct {
	Item   *domain.ScheduleItem
	Status string
}

// DayBoard is the rendered model for a single calendar day.
type DayBoard struct {
	Day     time.Time
	Entries []AgendaEntry
}

type AgendaService interface {
	Day(ctx context.Context, day, now time.Time) (*DayBoard, error)
	Week(ctx context.Context, start, now time.Time) ([]*DayBoard, error)
}

type PreferencesService interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Update(ctx context.Context, p *domain.Preferences) error
}
