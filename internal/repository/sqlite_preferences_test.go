package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesRepo_Get_DefaultSeededRow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferencesRepo(db)

	prefs, err := repo.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "default", prefs.ID)
	assert.True(t, prefs.NotifyEnabled)
	assert.True(t, prefs.Sound)
	assert.Equal(t, "chime", prefs.ReminderTone)
	assert.Equal(t, "daily", prefs.DefaultView)
}

func TestPreferencesRepo_Upsert_UpdatesRow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePreferencesRepo(db)
	ctx := context.Background()

	updated := &domain.Preferences{
		ID:            "default",
		NotifyEnabled: false,
		Sound:         true,
		ReminderTone:  "bell",
		DefaultView:   "weekly",
	}
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, got.NotifyEnabled)
	assert.Equal(t, "bell", got.ReminderTone)
	assert.Equal(t, "weekly", got.DefaultView)
}
