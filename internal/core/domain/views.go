package domain

import "time"

type DayView struct {
	Date       time.Time
	Events     []CalendarEvent
	Tasks      []Task
	TimeBlocks []TimeBlock
	TaskRefs   map[string]TaskRef
	Stats      DailyStats
	Warnings   []string
}

type WeekView struct {
	Start       time.Time
	End         time.Time
	StartOfWeek WeekStart
	Days        []DayView
	Stats       WeekStats
	Warnings    []string
}

// ScheduleResult is a saved time block plus the blocks it overlaps on its day.
// Overlaps are advisory unless the caller asked for strict scheduling.
type ScheduleResult struct {
	TimeBlock TimeBlock
	Conflicts []TimeBlock
}

func (r ScheduleResult) HasConflict() bool {
	return len(r.Conflicts) > 0
}
