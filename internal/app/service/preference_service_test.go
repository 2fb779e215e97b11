package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/app/service"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

func TestPreferenceService_DefaultsWhenUnavailable(t *testing.T) {
	store := newMemoryStore()
	store.failList = errors.New("connection reset")
	svc := service.NewPreferenceService(store)

	prefs, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)
}

func TestPreferenceService_UpdateIsVisibleImmediately(t *testing.T) {
	store := newMemoryStore()
	svc := service.NewPreferenceService(store)
	ctx := context.Background()

	_, err := svc.Resolve(ctx)
	require.NoError(t, err)

	want := domain.UserPreferences{StartOfWeek: domain.WeekStartSunday, ShowCompletedTasks: false}
	_, err = svc.Update(ctx, want)
	require.NoError(t, err)

	store.failList = errors.New("offline")
	got, err := svc.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPreferenceService_UnknownWeekStartFallsBack(t *testing.T) {
	store := newMemoryStore()
	store.prefs = &domain.UserPreferences{StartOfWeek: "friday", ShowCompletedTasks: true}
	svc := service.NewPreferenceService(store)

	prefs, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.WeekStartMonday, prefs.StartOfWeek)
}

func TestSessionService_ResetClearsCaches(t *testing.T) {
	store := newMemoryStore()
	tasks := service.NewTaskService(store)
	prefs := service.NewPreferenceService(store)
	ctx := context.Background()

	_, err := tasks.List(ctx)
	require.NoError(t, err)
	_, err = prefs.Resolve(ctx)
	require.NoError(t, err)

	service.NewSessionService(tasks, prefs).Reset()

	assert.False(t, tasks.Status().HasValue)
	assert.False(t, prefs.Status().HasValue)
}
