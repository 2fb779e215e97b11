package dto

type BreakdownItem struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type DailyStatsItem struct {
	Date            string        `json:"date"`
	TotalTasks      int           `json:"total_tasks"`
	TotalTimeBlocks int           `json:"total_time_blocks"`
	Total           int           `json:"total"`
	Completed       int           `json:"completed"`
	Pending         int           `json:"pending"`
	CompletionRate  int           `json:"completion_rate"`
	TaskStats       BreakdownItem `json:"task_stats"`
	TimeBlockStats  BreakdownItem `json:"time_block_stats"`
}

type TaskStatisticsItem struct {
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	Pending        int            `json:"pending"`
	Overdue        int            `json:"overdue"`
	CompletionRate int            `json:"completion_rate"`
	ByPriority     map[string]int `json:"by_priority"`
	ByStatus       map[string]int `json:"by_status"`
	ByCategory     map[string]int `json:"by_category"`
}

type TimeBlockStatisticsItem struct {
	BreakdownItem
	CompletionRate   int `json:"completion_rate"`
	ScheduledMinutes int `json:"scheduled_minutes"`
	CompletedMinutes int `json:"completed_minutes"`
}

type WeekStatsItem struct {
	Start             string           `json:"start"`
	End               string           `json:"end"`
	Days              []DailyStatsItem `json:"days"`
	Total             DailyStatsItem   `json:"total"`
	ProductivityScore int              `json:"productivity_score"`
}
