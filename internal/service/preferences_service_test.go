package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/agenda/internal/repository"
	"github.com/alexanderramin/agenda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreferencesService(t *testing.T) PreferencesService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewPreferencesService(repository.NewSQLitePreferencesRepo(database))
}

func TestPreferencesService_GetReturnsSeededDefaults(t *testing.T) {
	svc := newPreferencesService(t)

	prefs, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, prefs.NotifyEnabled)
	assert.Equal(t, "daily", prefs.DefaultView)
}

func TestPreferencesService_UpdateRoundTrip(t *testing.T) {
	svc := newPreferencesService(t)
	ctx := context.Background()

	prefs, err := svc.Get(ctx)
	require.NoError(t, err)

	prefs.NotifyEnabled = false
	prefs.DefaultView = "weekly"
	require.NoError(t, svc.Update(ctx, prefs))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, got.NotifyEnabled)
	assert.Equal(t, "weekly", got.DefaultView)
}

func TestPreferencesService_UpdateRejectsUnknownView(t *testing.T) {
	svc := newPreferencesService(t)
	ctx := context.Background()

	prefs, err := svc.Get(ctx)
	require.NoError(t, err)

	prefs.DefaultView = "monthly"
	assert.Error(t, svc.Update(ctx, prefs))
}
