package ports

import (
	"context"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

// TaskStore is the persistence side for tasks. GetTask returns (nil, nil) when
// the task does not exist.
type TaskStore interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error)
	ToggleCompletion(ctx context.Context, id string) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}
