package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/repository"
	"github.com/alexanderramin/agenda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemService(t *testing.T) ItemService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewItemService(repository.NewSQLiteItemRepo(database), testutil.NewTestUoW(database))
}

func TestItemService_CreateAssignsIDAndDefaults(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	item := &domain.ScheduleItem{Subject: "Dentist"}
	require.NoError(t, svc.Create(ctx, item))

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, domain.CategoryEvent, item.Category)
	assert.Equal(t, domain.RepeatNever, item.Repeat)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)

	got, err := svc.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dentist", got.Subject)
}

func TestItemService_CreateKeepsProvidedID(t *testing.T) {
	svc := newItemService(t)

	item := testutil.NewEvent("fixed-id", "Maths")
	require.NoError(t, svc.Create(context.Background(), item))
	assert.Equal(t, "fixed-id", item.ID)
}

func TestItemService_CreateValidation(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		item *domain.ScheduleItem
	}{
		{"empty subject", &domain.ScheduleItem{}},
		{"bad category", &domain.ScheduleItem{Subject: "x", Category: "meeting"}},
		{"bad repeat", &domain.ScheduleItem{Subject: "x", Repeat: "Fortnightly"}},
		{"bad repeat day", &domain.ScheduleItem{Subject: "x", RepeatDay: "Funday"}},
		{"weekly without day", &domain.ScheduleItem{Subject: "x", Repeat: domain.RepeatWeekly}},
		{"bad start time", &domain.ScheduleItem{Subject: "x", StartTime: "8:3"}},
		{"bad end time", &domain.ScheduleItem{Subject: "x", StartTime: "08:30", EndTime: "25:00"}},
		{"end without start", &domain.ScheduleItem{Subject: "x", EndTime: "09:00"}},
		{"zero reminder offset", &domain.ScheduleItem{Subject: "x", Reminders: []domain.Reminder{{OffsetMin: 0}}}},
		{"negative reminder offset", &domain.ScheduleItem{Subject: "x", Reminders: []domain.Reminder{{OffsetMin: -5}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, svc.Create(ctx, tc.item))
		})
	}
}

func TestItemService_ImportAllCreatesBatch(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	batch := []*domain.ScheduleItem{
		{Subject: "Maths"},
		{Subject: "Buy milk", Category: domain.CategoryTask},
	}
	require.NoError(t, svc.ImportAll(ctx, batch))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NotEmpty(t, batch[0].ID)
	assert.Equal(t, domain.CategoryEvent, batch[0].Category)
}

func TestItemService_ImportAllRollsBackOnInsertFailure(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	// The duplicate key fails on the second insert; the first must not
	// survive the rollback.
	batch := []*domain.ScheduleItem{
		{ID: "dup", Subject: "First"},
		{ID: "dup", Subject: "Second"},
	}
	require.Error(t, svc.ImportAll(ctx, batch))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemService_ImportAllRollsBackOnValidationFailure(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	batch := []*domain.ScheduleItem{
		{Subject: "Fine"},
		{Subject: "Broken", StartTime: "8:3"},
	}
	require.Error(t, svc.ImportAll(ctx, batch))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemService_UpdateBumpsUpdatedAt(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	item := testutil.NewEvent("ev1", "Maths")
	require.NoError(t, svc.Create(ctx, item))
	created := item.UpdatedAt

	item.Subject = "Maths revision"
	require.NoError(t, svc.Update(ctx, item))
	assert.False(t, item.UpdatedAt.Before(created))

	got, err := svc.GetByID(ctx, "ev1")
	require.NoError(t, err)
	assert.Equal(t, "Maths revision", got.Subject)
}

func TestItemService_UpdateValidatesBeforeWrite(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	item := testutil.NewEvent("ev1", "Maths")
	require.NoError(t, svc.Create(ctx, item))

	item.StartTime = "nope"
	assert.Error(t, svc.Update(ctx, item))

	got, err := svc.GetByID(ctx, "ev1")
	require.NoError(t, err)
	assert.Equal(t, "08:30", got.StartTime)
}

func TestItemService_DeleteMissingReturnsNotFound(t *testing.T) {
	svc := newItemService(t)
	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestItemService_ListByCategory(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testutil.NewEvent("ev1", "Maths")))
	require.NoError(t, svc.Create(ctx, testutil.NewTask("t1", "Buy milk")))

	tasks, err := svc.ListByCategory(ctx, domain.CategoryTask)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Subject)
}
