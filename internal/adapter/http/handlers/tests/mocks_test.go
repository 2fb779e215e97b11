package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Get(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) SetStatus(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleCompletion(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type timeBlockServiceMock struct {
	mock.Mock
}

func (m *timeBlockServiceMock) ListForDate(ctx context.Context, date time.Time) ([]domain.TimeBlock, error) {
	args := m.Called(ctx, date)

	var blocks []domain.TimeBlock
	if value := args.Get(0); value != nil {
		blocks = value.([]domain.TimeBlock)
	}
	return blocks, args.Error(1)
}

func (m *timeBlockServiceMock) CheckConflicts(ctx context.Context, candidate domain.Interval, excludeID string) ([]domain.TimeBlock, error) {
	args := m.Called(ctx, candidate, excludeID)

	var blocks []domain.TimeBlock
	if value := args.Get(0); value != nil {
		blocks = value.([]domain.TimeBlock)
	}
	return blocks, args.Error(1)
}

func (m *timeBlockServiceMock) Create(ctx context.Context, input domain.CreateTimeBlockInput, strict bool) (domain.ScheduleResult, error) {
	args := m.Called(ctx, input, strict)
	return args.Get(0).(domain.ScheduleResult), args.Error(1)
}

func (m *timeBlockServiceMock) Update(ctx context.Context, id string, input domain.UpdateTimeBlockInput, strict bool) (domain.ScheduleResult, error) {
	args := m.Called(ctx, id, input, strict)
	return args.Get(0).(domain.ScheduleResult), args.Error(1)
}

func (m *timeBlockServiceMock) SetCompletion(ctx context.Context, id string, completed bool) (domain.TimeBlock, error) {
	args := m.Called(ctx, id, completed)
	return args.Get(0).(domain.TimeBlock), args.Error(1)
}

func (m *timeBlockServiceMock) ToggleCompletion(ctx context.Context, id string) (domain.TimeBlock, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TimeBlock), args.Error(1)
}

func (m *timeBlockServiceMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *timeBlockServiceMock) ResolveTask(ctx context.Context, id string) (domain.TaskRef, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TaskRef), args.Error(1)
}

func (m *timeBlockServiceMock) SweepDanglingReferences(ctx context.Context, from, to time.Time, apply bool) ([]domain.DanglingRef, error) {
	args := m.Called(ctx, from, to, apply)

	var refs []domain.DanglingRef
	if value := args.Get(0); value != nil {
		refs = value.([]domain.DanglingRef)
	}
	return refs, args.Error(1)
}

type calendarServiceMock struct {
	mock.Mock
}

func (m *calendarServiceMock) Day(ctx context.Context, date time.Time) (domain.DayView, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.DayView), args.Error(1)
}

func (m *calendarServiceMock) Week(ctx context.Context, date time.Time) (domain.WeekView, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.WeekView), args.Error(1)
}

func (m *calendarServiceMock) Events(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	args := m.Called(ctx, from, to)

	var events []domain.CalendarEvent
	if value := args.Get(0); value != nil {
		events = value.([]domain.CalendarEvent)
	}
	return events, args.Error(1)
}

type statsServiceMock struct {
	mock.Mock
}

func (m *statsServiceMock) Daily(ctx context.Context, date time.Time) (domain.DailyStats, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.DailyStats), args.Error(1)
}

func (m *statsServiceMock) Tasks(ctx context.Context, query domain.StatsQuery) (domain.TaskStatistics, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.TaskStatistics), args.Error(1)
}

func (m *statsServiceMock) Week(ctx context.Context, date time.Time) (domain.WeekStats, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.WeekStats), args.Error(1)
}

func (m *statsServiceMock) TimeBlocks(ctx context.Context, from, to time.Time) (domain.TimeBlockStatistics, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(domain.TimeBlockStatistics), args.Error(1)
}

type preferenceServiceMock struct {
	mock.Mock
}

func (m *preferenceServiceMock) Resolve(ctx context.Context) (domain.UserPreferences, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UserPreferences), args.Error(1)
}

func (m *preferenceServiceMock) Update(ctx context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error) {
	args := m.Called(ctx, prefs)
	return args.Get(0).(domain.UserPreferences), args.Error(1)
}

type sessionServiceMock struct {
	mock.Mock
}

func (m *sessionServiceMock) Reset() {
	m.Called()
}

type pingerMock struct {
	mock.Mock
}

func (m *pingerMock) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *pingerMock) Name() string {
	return m.Called().String(0)
}

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func strPtr(v string) *string {
	return &v
}

func sameTime(want time.Time) interface{} {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}
