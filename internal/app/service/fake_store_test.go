package service_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

// memoryStore is an in-memory backend with switchable failures.
type memoryStore struct {
	mu     sync.Mutex
	tasks  map[string]domain.Task
	blocks map[string]domain.TimeBlock
	prefs  *domain.UserPreferences
	nextID int

	failList   error
	listCalls  int
	blockCalls int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		tasks:  make(map[string]domain.Task),
		blocks: make(map[string]domain.TimeBlock),
	}
}

func (s *memoryStore) id(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func (s *memoryStore) addTask(t domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = t
}

func (s *memoryStore) addBlock(b domain.TimeBlock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[b.ID] = b
}

func (s *memoryStore) ListTasks(context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.failList != nil {
		return nil, s.failList
	}
	out := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (s *memoryStore) GetTask(_ context.Context, id string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *memoryStore) CreateTask(_ context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := domain.Task{
		ID:          s.id("task"),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		CategoryID:  in.CategoryID,
		ProjectID:   in.ProjectID,
	}
	s.tasks[t.ID] = t
	return t, nil
}

func (s *memoryStore) UpdateTask(_ context.Context, id string, in domain.UpdateTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	t = in.Apply(t)
	s.tasks[id] = t
	return t, nil
}

func (s *memoryStore) DeleteTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *memoryStore) ListTimeBlocks(_ context.Context, date time.Time) ([]domain.TimeBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blockCalls++
	var out []domain.TimeBlock
	y, m, d := date.Date()
	for _, b := range s.blocks {
		by, bm, bd := b.Start.In(date.Location()).Date()
		if by == y && bm == m && bd == d {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memoryStore) CreateTimeBlock(_ context.Context, in domain.CreateTimeBlockInput) (domain.TimeBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := domain.TimeBlock{
		ID:          s.id("block"),
		Title:       in.Title,
		Start:       in.Start,
		End:         in.End,
		TaskID:      in.TaskID,
		IsCompleted: in.IsCompleted,
	}
	s.blocks[b.ID] = b
	return b, nil
}

func (s *memoryStore) UpdateTimeBlock(_ context.Context, id string, in domain.UpdateTimeBlockInput) (domain.TimeBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blocks[id]
	if !ok {
		return domain.TimeBlock{}, domain.ErrTimeBlockNotFound
	}
	b = in.Apply(b)
	s.blocks[id] = b
	return b, nil
}

func (s *memoryStore) DeleteTimeBlock(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blocks[id]; !ok {
		return domain.ErrTimeBlockNotFound
	}
	delete(s.blocks, id)
	return nil
}

func (s *memoryStore) GetPreferences(context.Context) (domain.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList != nil {
		return domain.UserPreferences{}, s.failList
	}
	if s.prefs == nil {
		return domain.DefaultPreferences(), nil
	}
	return *s.prefs, nil
}

func (s *memoryStore) SavePreferences(_ context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = &prefs
	return prefs, nil
}

func ptr[T any](v T) *T {
	return &v
}

func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.March, day, hour, minute, 0, 0, time.Local)
}
