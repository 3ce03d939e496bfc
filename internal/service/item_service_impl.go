package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/agenda/internal/db"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/occurrence"
	"github.com/alexanderramin/agenda/internal/repository"
	"github.com/google/uuid"
)

type itemService struct {
	items repository.ItemRepo
	uow   db.UnitOfWork
}

func NewItemService(items repository.ItemRepo, uow db.UnitOfWork) ItemService {
	return &itemService{items: items, uow: uow}
}

// prepareNew fills defaults for an item about to be stored and validates it.
func prepareNew(item *domain.ScheduleItem, now time.Time) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Category == "" {
		item.Category = domain.CategoryEvent
	}
	if item.Repeat == "" {
		item.Repeat = domain.RepeatNever
	}
	if err := validateItem(item); err != nil {
		return err
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

func (s *itemService) Create(ctx context.Context, item *domain.ScheduleItem) error {
	if err := prepareNew(item, time.Now().UTC()); err != nil {
		return err
	}
	return s.items.Create(ctx, item)
}

// ImportAll stores a batch of items in a single transaction. Any failure
// rolls the whole batch back, so a snapshot is applied fully or not at all.
func (s *itemService) ImportAll(ctx context.Context, items []*domain.ScheduleItem) error {
	now := time.Now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)
		for _, item := range items {
			if err := prepareNew(item, now); err != nil {
				return fmt.Errorf("importing %q: %w", item.Subject, err)
			}
			if err := txItems.Create(ctx, item); err != nil {
				return fmt.Errorf("importing %q: %w", item.Subject, err)
			}
		}
		return nil
	})
}

func (s *itemService) GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *itemService) List(ctx context.Context) ([]*domain.ScheduleItem, error) {
	return s.items.List(ctx)
}

func (s *itemService) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.ScheduleItem, error) {
	return s.items.ListByCategory(ctx, category)
}

func (s *itemService) Update(ctx context.Context, item *domain.ScheduleItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

// validateItem enforces the data-quality invariants the occurrence logic
// assumes: well-formed "HH:MM" times, known enum values, a real weekday name
// when a repeat day is set, and strictly positive reminder offsets.
func validateItem(item *domain.ScheduleItem) error {
	if item.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if !domain.ValidCategories[string(item.Category)] {
		return fmt.Errorf("invalid category %q", item.Category)
	}
	if !domain.ValidRepeats[string(item.Repeat)] {
		return fmt.Errorf("invalid repeat %q", item.Repeat)
	}
	if item.RepeatDay != "" && !domain.ValidWeekdays[item.RepeatDay] {
		return fmt.Errorf("invalid repeat day %q", item.RepeatDay)
	}
	if item.Repeat == domain.RepeatWeekly && item.RepeatDay == "" {
		return fmt.Errorf("weekly items require a repeat day")
	}
	if item.StartTime != "" {
		if _, _, ok := occurrence.ParseClock(item.StartTime); !ok {
			return fmt.Errorf("invalid start time %q (expected HH:MM)", item.StartTime)
		}
	}
	if item.EndTime != "" {
		if item.StartTime == "" {
			return fmt.Errorf("end time requires a start time")
		}
		if _, _, ok := occurrence.ParseClock(item.EndTime); !ok {
			return fmt.Errorf("invalid end time %q (expected HH:MM)", item.EndTime)
		}
	}
	for i, rem := range item.Reminders {
		if rem.OffsetMin <= 0 {
			return fmt.Errorf("reminder %d: offset must be a positive number of minutes", i)
		}
	}
	return nil
}
