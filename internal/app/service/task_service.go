package service

import (
	"context"
	"fmt"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/cache"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
)

type TaskService struct {
	store ports.TaskStore
	cache *cache.Collection[domain.Task]
}

func NewTaskService(store ports.TaskStore, opts ...cache.Option) *TaskService {
	return &TaskService{
		store: store,
		cache: cache.New("tasks", store.ListTasks, taskKey, opts...),
	}
}

func taskKey(t domain.Task) string {
	return t.ID
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.cache.Get(ctx)
}

// Get fetches one task from the store. A missing task yields (nil, nil).
func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	if task == nil {
		s.cache.Remove(id)
		return nil, nil
	}
	s.cache.Upsert(*task)
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if input.Status == "" {
		input.Status = domain.TaskStatusTodo
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	task, err := s.store.CreateTask(ctx, input)
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	s.cache.Upsert(task)
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.store.UpdateTask(ctx, id, input)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}
	s.cache.Upsert(task)
	return task, nil
}

// ToggleCompletion flips done-ness through the status field so the stored
// completed flag and status never disagree.
func (s *TaskService) ToggleCompletion(ctx context.Context, id string) (domain.Task, error) {
	current, ok := s.cache.Find(id)
	if !ok {
		found, err := s.Get(ctx, id)
		if err != nil {
			return domain.Task{}, err
		}
		if found == nil {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		current = *found
	}

	return s.SetStatus(ctx, id, domain.ToggledStatus(current.Status))
}

func (s *TaskService) SetStatus(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error) {
	return s.Update(ctx, id, domain.UpdateTaskInput{Status: &status})
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	s.cache.Remove(id)
	return nil
}

func (s *TaskService) Status() cache.Status {
	return s.cache.Status()
}

func (s *TaskService) Reset() {
	s.cache.Reset()
}

var _ ports.TaskService = (*TaskService)(nil)
