package dto

type TimeBlockItem struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	TaskID          *string `json:"task_id,omitempty"`
	IsCompleted     bool    `json:"is_completed"`
}

type CreateTimeBlockRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
	TaskID      *string `json:"task_id" binding:"omitempty,max=64"`
	IsCompleted *bool   `json:"is_completed"`
}

type UpdateTimeBlockRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	TaskID      *string `json:"task_id" binding:"omitempty,max=64"`
	IsCompleted *bool   `json:"is_completed"`
}

type CheckConflictRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	ExcludeID string `json:"exclude_id"`
}

type ConflictResponse struct {
	Conflict  bool            `json:"conflict"`
	Conflicts []TimeBlockItem `json:"conflicts"`
}

type ScheduleResponse struct {
	TimeBlock TimeBlockItem   `json:"time_block"`
	Conflict  bool            `json:"conflict"`
	Conflicts []TimeBlockItem `json:"conflicts"`
}

type TaskRefResponse struct {
	TaskID *string   `json:"task_id"`
	Found  bool      `json:"found"`
	Task   *TaskItem `json:"task,omitempty"`
}
