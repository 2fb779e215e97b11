package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/cache"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/planner"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
)

// MaxEventRangeDays caps Events so a single request cannot fan out into
// hundreds of per-day fetches.
const MaxEventRangeDays = 62

type taskSource interface {
	List(ctx context.Context) ([]domain.Task, error)
	Status() cache.Status
}

type timeBlockSource interface {
	ListForDate(ctx context.Context, date time.Time) ([]domain.TimeBlock, error)
	ListForWindow(ctx context.Context, w planner.Window) ([]domain.TimeBlock, error)
	Status(date time.Time) cache.Status
}

type preferenceSource interface {
	Resolve(ctx context.Context) (domain.UserPreferences, error)
}

type CalendarService struct {
	tasks  taskSource
	blocks timeBlockSource
	prefs  preferenceSource
}

func NewCalendarService(tasks taskSource, blocks timeBlockSource, prefs preferenceSource) *CalendarService {
	return &CalendarService{tasks: tasks, blocks: blocks, prefs: prefs}
}

func (s *CalendarService) Day(ctx context.Context, date time.Time) (domain.DayView, error) {
	prefs, err := s.prefs.Resolve(ctx)
	if err != nil {
		return domain.DayView{}, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return domain.DayView{}, err
	}
	blocks, err := s.blocks.ListForDate(ctx, date)
	if err != nil {
		return domain.DayView{}, err
	}

	view := dayView(tasks, blocks, date, prefs)
	view.Warnings = s.warnings(date)
	return view, nil
}

func (s *CalendarService) Week(ctx context.Context, date time.Time) (domain.WeekView, error) {
	prefs, err := s.prefs.Resolve(ctx)
	if err != nil {
		return domain.WeekView{}, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return domain.WeekView{}, err
	}

	w := planner.WeekWindow(date, prefs.StartOfWeek)
	blocks, err := s.blocks.ListForWindow(ctx, w)
	if err != nil {
		return domain.WeekView{}, err
	}

	view := domain.WeekView{
		Start:       w.Start,
		End:         w.End,
		StartOfWeek: prefs.StartOfWeek,
		Stats:       planner.WeekStats(tasks, blocks, w),
	}
	for _, day := range w.Days() {
		view.Days = append(view.Days, dayView(tasks, blocks, day, prefs))
		view.Warnings = append(view.Warnings, s.blockWarning(day)...)
	}
	view.Warnings = append(s.taskWarning(), view.Warnings...)
	return view, nil
}

// Events lists every calendar event between from and to, both days included.
func (s *CalendarService) Events(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error) {
	w := planner.RangeWindow(from, to)
	if n := len(w.Days()); n > MaxEventRangeDays {
		return nil, fmt.Errorf("event range of %d days exceeds %d: %w", n, MaxEventRangeDays, domain.ErrInvalidRange)
	}

	prefs, err := s.prefs.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	blocks, err := s.blocks.ListForWindow(ctx, w)
	if err != nil {
		return nil, err
	}

	events := planner.EventsInWindow(planner.BuildEvents(planner.FilterTasks(tasks, prefs), blocks), w)
	planner.SortEvents(events)
	return events, nil
}

// dayView assembles one day. Statistics count every task of the day, even
// the ones hidden by ShowCompletedTasks.
func dayView(tasks []domain.Task, blocks []domain.TimeBlock, date time.Time, prefs domain.UserPreferences) domain.DayView {
	dayTasks := planner.FilterTasks(planner.TasksForDate(tasks, date), prefs)
	dayBlocks := planner.TimeBlocksForDate(blocks, date)

	events := planner.BuildEvents(dayTasks, dayBlocks)
	planner.SortEvents(events)

	refs := make(map[string]domain.TaskRef, len(dayBlocks))
	for _, block := range dayBlocks {
		if block.TaskID != nil {
			refs[block.ID] = planner.ResolveTaskRef(block, tasks)
		}
	}

	return domain.DayView{
		Date:       planner.StartOfDay(date),
		Events:     events,
		Tasks:      dayTasks,
		TimeBlocks: dayBlocks,
		TaskRefs:   refs,
		Stats:      planner.DailyStats(tasks, blocks, date),
	}
}

func (s *CalendarService) warnings(date time.Time) []string {
	return append(s.taskWarning(), s.blockWarning(date)...)
}

func (s *CalendarService) taskWarning() []string {
	return statusWarning(s.tasks.Status())
}

func (s *CalendarService) blockWarning(date time.Time) []string {
	return statusWarning(s.blocks.Status(date))
}

// statusWarning reports a resource that could not be loaded at all. A cache
// serving stale data after a failed refresh is not surfaced.
func statusWarning(st cache.Status) []string {
	if st.LastErr == nil || st.HasValue {
		return nil
	}
	return []string{fmt.Sprintf("%s: unavailable, refresh failed", st.Name)}
}

var _ ports.CalendarService = (*CalendarService)(nil)
