package domain

import "time"

// UncategorizedKey buckets tasks without a category in TaskStatistics.ByCategory.
const UncategorizedKey = "uncategorized"

type Breakdown struct {
	Total     int
	Completed int
	Pending   int
}

type DailyStats struct {
	Date            time.Time
	TotalTasks      int
	TotalTimeBlocks int
	Total           int
	Completed       int
	Pending         int
	CompletionRate  int
	TaskStats       Breakdown
	TimeBlockStats  Breakdown
}

type PriorityCounts struct {
	Low    int
	Medium int
	High   int
}

type StatusCounts struct {
	Backlog int
	Todo    int
	Doing   int
	Done    int
}

type TaskStatistics struct {
	Total          int
	Completed      int
	Pending        int
	Overdue        int
	CompletionRate int
	ByPriority     PriorityCounts
	ByStatus       StatusCounts
	ByCategory     map[string]int
}

type TimeBlockStatistics struct {
	Breakdown
	CompletionRate   int
	ScheduledMinutes int
	CompletedMinutes int
}

// StatsQuery narrows RangeStats. Bounds are day-inclusive on the due date.
type StatsQuery struct {
	From       *time.Time
	To         *time.Time
	ProjectID  *string
	CategoryID *string
}

type WeekStats struct {
	Start             time.Time
	End               time.Time
	Days              []DailyStats
	Total             DailyStats
	ProductivityScore int
}
