package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/app/service"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

type calendarFixture struct {
	store    *memoryStore
	tasks    *service.TaskService
	blocks   *service.TimeBlockService
	prefs    *service.PreferenceService
	calendar *service.CalendarService
	stats    *service.StatsService
}

func newCalendarFixture() calendarFixture {
	store := newMemoryStore()
	tasks := service.NewTaskService(store)
	blocks := service.NewTimeBlockService(store, tasks, time.Local)
	prefs := service.NewPreferenceService(store)
	now := func() time.Time { return at(11, 12, 0) }
	return calendarFixture{
		store:    store,
		tasks:    tasks,
		blocks:   blocks,
		prefs:    prefs,
		calendar: service.NewCalendarService(tasks, blocks, prefs),
		stats:    service.NewStatsService(tasks, blocks, prefs, now),
	}
}

func TestCalendarService_DayMergesTasksAndBlocks(t *testing.T) {
	f := newCalendarFixture()
	f.store.addTask(domain.Task{ID: "t1", Title: "Report", Status: domain.TaskStatusTodo, DueDate: ptr(at(11, 17, 0))})
	f.store.addTask(domain.Task{ID: "t2", Title: "Other day", Status: domain.TaskStatusTodo, DueDate: ptr(at(12, 9, 0))})
	f.store.addBlock(domain.TimeBlock{ID: "b1", Title: "Focus", Start: at(11, 9, 0), End: at(11, 10, 0), IsCompleted: true, TaskID: ptr("t1")})

	view, err := f.calendar.Day(context.Background(), at(11, 8, 0))
	require.NoError(t, err)

	require.Len(t, view.Events, 2)
	assert.Equal(t, "timeblock-b1", view.Events[0].ID.String())
	assert.Equal(t, "task-t1", view.Events[1].ID.String())
	assert.Equal(t, 2, view.Stats.Total)
	assert.Equal(t, 1, view.Stats.Completed)
	assert.Equal(t, 50, view.Stats.CompletionRate)
	assert.True(t, view.TaskRefs["b1"].Found)
	assert.Empty(t, view.Warnings)
}

func TestCalendarService_DayHidesCompletedButStillCountsThem(t *testing.T) {
	f := newCalendarFixture()
	f.store.addTask(domain.Task{ID: "t1", Status: domain.TaskStatusDone, DueDate: ptr(at(11, 17, 0))})
	f.store.prefs = &domain.UserPreferences{StartOfWeek: domain.WeekStartMonday, ShowCompletedTasks: false}

	view, err := f.calendar.Day(context.Background(), at(11, 8, 0))
	require.NoError(t, err)
	assert.Empty(t, view.Events)
	assert.Equal(t, 1, view.Stats.Completed)
}

func TestCalendarService_WeekUsesPreferredStart(t *testing.T) {
	f := newCalendarFixture()
	f.store.prefs = &domain.UserPreferences{StartOfWeek: domain.WeekStartSunday, ShowCompletedTasks: true}

	// 2026-03-11 is a Wednesday.
	view, err := f.calendar.Week(context.Background(), at(11, 8, 0))
	require.NoError(t, err)
	require.Len(t, view.Days, 7)
	assert.Equal(t, time.Sunday, view.Start.Weekday())
	assert.Equal(t, 8, view.Start.Day())
	assert.Equal(t, 14, view.End.Day())
	assert.Equal(t, 7, f.store.blockCalls)
}

func TestCalendarService_WarnsWhenTasksUnavailable(t *testing.T) {
	f := newCalendarFixture()
	f.store.failList = errors.New("dial tcp: timeout")

	view, err := f.calendar.Day(context.Background(), at(11, 8, 0))
	require.NoError(t, err)
	assert.Empty(t, view.Tasks)
	assert.NotEmpty(t, view.Warnings)
}

func TestCalendarService_EventsRangeIsBounded(t *testing.T) {
	f := newCalendarFixture()

	_, err := f.calendar.Events(context.Background(), at(1, 0, 0), at(1, 0, 0).AddDate(0, 3, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestStatsService_TasksCountsOverdue(t *testing.T) {
	f := newCalendarFixture()
	f.store.addTask(domain.Task{ID: "t1", Status: domain.TaskStatusTodo, Priority: domain.PriorityHigh, DueDate: ptr(at(10, 9, 0))})
	f.store.addTask(domain.Task{ID: "t2", Status: domain.TaskStatusDone, Priority: domain.PriorityLow, DueDate: ptr(at(10, 9, 0))})

	stats, err := f.stats.Tasks(context.Background(), domain.StatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 1, stats.ByPriority.High)
	assert.Equal(t, 2, stats.ByCategory[domain.UncategorizedKey])
}

func TestStatsService_Week(t *testing.T) {
	f := newCalendarFixture()
	f.store.addTask(domain.Task{ID: "t1", Status: domain.TaskStatusDone, DueDate: ptr(at(10, 9, 0))})
	f.store.addBlock(domain.TimeBlock{ID: "b1", Start: at(12, 9, 0), End: at(12, 10, 0)})

	stats, err := f.stats.Week(context.Background(), at(11, 8, 0))
	require.NoError(t, err)
	require.Len(t, stats.Days, 7)
	assert.Equal(t, 2, stats.Total.Total)
	assert.Equal(t, 60, stats.ProductivityScore)
}

func TestStatsService_TimeBlocksRangeIsBounded(t *testing.T) {
	f := newCalendarFixture()
	from := at(1, 0, 0)

	_, err := f.stats.TimeBlocks(context.Background(), from, from.AddDate(0, 0, 80))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	assert.Zero(t, f.store.blockCalls, "an oversized range must not reach the store")
}
