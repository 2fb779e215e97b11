package dto

type EventItem struct {
	ID        string         `json:"id"`
	Draft     bool           `json:"draft,omitempty"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Start     string         `json:"start"`
	End       *string        `json:"end,omitempty"`
	Completed bool           `json:"completed"`
	Color     string         `json:"color"`
	Task      *TaskItem      `json:"task,omitempty"`
	TimeBlock *TimeBlockItem `json:"time_block,omitempty"`
}

type DayViewResponse struct {
	Date       string                     `json:"date"`
	Events     []EventItem                `json:"events"`
	Tasks      []TaskItem                 `json:"tasks"`
	TimeBlocks []TimeBlockItem            `json:"time_blocks"`
	TaskRefs   map[string]TaskRefResponse `json:"task_refs"`
	Stats      DailyStatsItem             `json:"stats"`
	Warnings   []string                   `json:"warnings"`
}

type WeekViewResponse struct {
	Start       string            `json:"start"`
	End         string            `json:"end"`
	StartOfWeek string            `json:"start_of_week"`
	Days        []DayViewResponse `json:"days"`
	Stats       WeekStatsItem     `json:"stats"`
	Warnings    []string          `json:"warnings"`
}
