// Package planner merges tasks and time blocks into calendar views and reduces
// them into statistics. Everything here is pure: callers supply the clock and
// the data.
package planner

import (
	"sort"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

const daysPerWeek = 7

// Window is a run of whole calendar days. End is the first instant of the last
// day, so both Start and End are days inside the window.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (w Window) Contains(t time.Time) bool {
	day := StartOfDay(t.In(w.Start.Location()))
	return !day.Before(w.Start) && !day.After(w.End)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay compares the calendar date of t, read in ref's location, with ref's.
func SameDay(t, ref time.Time) bool {
	ty, tm, td := t.In(ref.Location()).Date()
	ry, rm, rd := ref.Date()
	return ty == ry && tm == rm && td == rd
}

// WeekWindow returns the seven day window containing date. The window opens on
// Sunday when startOfWeek is sunday and on Monday otherwise.
func WeekWindow(date time.Time, startOfWeek domain.WeekStart) Window {
	first := time.Monday
	if startOfWeek == domain.WeekStartSunday {
		first = time.Sunday
	}
	offset := (int(date.Weekday()) - int(first) + daysPerWeek) % daysPerWeek
	y, m, d := date.Date()
	start := time.Date(y, m, d-offset, 0, 0, 0, 0, date.Location())
	return Window{Start: start, End: start.AddDate(0, 0, daysPerWeek-1)}
}

// RangeWindow spans from..to inclusive, whole days, in from's location.
func RangeWindow(from, to time.Time) Window {
	start := StartOfDay(from)
	end := StartOfDay(to.In(from.Location()))
	if end.Before(start) {
		start, end = end, start
	}
	return Window{Start: start, End: end}
}

func TasksForDate(tasks []domain.Task, date time.Time) []domain.Task {
	var out []domain.Task
	for _, task := range tasks {
		if task.DueDate != nil && SameDay(*task.DueDate, date) {
			out = append(out, task)
		}
	}
	return out
}

func TimeBlocksForDate(blocks []domain.TimeBlock, date time.Time) []domain.TimeBlock {
	var out []domain.TimeBlock
	for _, block := range blocks {
		if SameDay(block.Start, date) {
			out = append(out, block)
		}
	}
	return out
}

// FilterTasks applies the user's visibility preferences before aggregation.
func FilterTasks(tasks []domain.Task, prefs domain.UserPreferences) []domain.Task {
	if prefs.ShowCompletedTasks {
		return tasks
	}
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.Completed() {
			out = append(out, task)
		}
	}
	return out
}

// BuildEvents projects tasks with a due date and all time blocks onto calendar
// events. Output order follows input order; see SortEvents.
func BuildEvents(tasks []domain.Task, blocks []domain.TimeBlock) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(tasks)+len(blocks))
	drafts := 0

	for i := range tasks {
		task := tasks[i]
		if task.DueDate == nil {
			continue
		}
		id := domain.PersistedEventID(domain.EventTypeTask, task.ID)
		if task.ID == "" {
			id = domain.DraftEventID(domain.EventTypeTask, drafts)
			drafts++
		}
		completed := task.Completed()
		events = append(events, domain.CalendarEvent{
			ID:        id,
			Title:     task.Title,
			Start:     *task.DueDate,
			Type:      domain.EventTypeTask,
			Completed: completed,
			Color:     domain.EventColor(domain.EventTypeTask, completed),
			Task:      &task,
		})
	}

	for i := range blocks {
		block := blocks[i]
		id := domain.PersistedEventID(domain.EventTypeTimeBlock, block.ID)
		if block.ID == "" {
			id = domain.DraftEventID(domain.EventTypeTimeBlock, drafts)
			drafts++
		}
		end := block.End
		events = append(events, domain.CalendarEvent{
			ID:        id,
			Title:     block.Title,
			Start:     block.Start,
			End:       &end,
			Type:      domain.EventTypeTimeBlock,
			Completed: block.IsCompleted,
			Color:     domain.EventColor(domain.EventTypeTimeBlock, block.IsCompleted),
			TimeBlock: &block,
		})
	}

	return events
}

// SortEvents orders events by start time, keeping input order for ties.
func SortEvents(events []domain.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}

// EventsInWindow keeps events starting on a day inside w.
func EventsInWindow(events []domain.CalendarEvent, w Window) []domain.CalendarEvent {
	var out []domain.CalendarEvent
	for _, event := range events {
		if w.Contains(event.Start) {
			out = append(out, event)
		}
	}
	return out
}
