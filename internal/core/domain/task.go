package domain

import "time"

type TaskStatus string

const (
	TaskStatusBacklog TaskStatus = "backlog"
	TaskStatusTodo    TaskStatus = "todo"
	TaskStatusDoing   TaskStatus = "doing"
	TaskStatusDone    TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusBacklog, TaskStatusTodo, TaskStatusDoing, TaskStatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a due-dated unit of work. Status is the single source of truth for
// done-ness; Completed is derived from it.
type Task struct {
	ID          string
	Title       string
	Description *string
	Status      TaskStatus
	Priority    Priority
	DueDate     *time.Time
	CategoryID  *string
	ProjectID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Task) Completed() bool {
	return t.Status == TaskStatusDone
}

// NormalizeStatus reconciles the status/completed pair found on stored records.
// A known status wins; otherwise the boolean decides between done and todo.
func NormalizeStatus(status string, completed bool) TaskStatus {
	if s := TaskStatus(status); s.Valid() {
		return s
	}
	if completed {
		return TaskStatusDone
	}
	return TaskStatusTodo
}

// ToggledStatus returns the status a task moves to when its completion is flipped.
func ToggledStatus(current TaskStatus) TaskStatus {
	if current == TaskStatusDone {
		return TaskStatusTodo
	}
	return TaskStatusDone
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    Priority
	DueDate     *time.Time
	CategoryID  *string
	ProjectID   *string
}

// UpdateTaskInput carries a partial update. The *Set flags distinguish an
// explicit null from an absent field.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *Priority
	DueDate        *time.Time
	DueDateSet     bool
	CategoryID     *string
	CategoryIDSet  bool
	ProjectID      *string
	ProjectIDSet   bool
}

// Apply returns a copy of task with the update applied.
func (in UpdateTaskInput) Apply(task Task) Task {
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.DescriptionSet {
		task.Description = in.Description
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.DueDateSet {
		task.DueDate = in.DueDate
	}
	if in.CategoryIDSet {
		task.CategoryID = in.CategoryID
	}
	if in.ProjectIDSet {
		task.ProjectID = in.ProjectID
	}
	return task
}
