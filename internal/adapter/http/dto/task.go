package dto

type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Completed   bool    `json:"completed"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	ProjectID   *string `json:"project_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=backlog todo doing done"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"`
	CategoryID  *string `json:"category_id" binding:"omitempty,max=64"`
	ProjectID   *string `json:"project_id" binding:"omitempty,max=64"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=backlog todo doing done"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"`
	CategoryID  *string `json:"category_id" binding:"omitempty,max=64"`
	ProjectID   *string `json:"project_id" binding:"omitempty,max=64"`
}

type SetTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=backlog todo doing done"`
}
