package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

func taskPath(id string) string {
	return "/tasks/" + url.PathEscape(id)
}

func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var records []taskRecord
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, nil, &records); err != nil {
		return nil, collectionError(err)
	}
	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		tasks = append(tasks, record.toDomain())
	}
	return tasks, nil
}

// GetTask returns (nil, nil) when the API answers 404.
func (c *Client) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var record taskRecord
	err := c.do(ctx, http.MethodGet, taskPath(id), nil, nil, &record)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	task := record.toDomain()
	return &task, nil
}

func (c *Client) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	var record taskRecord
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, taskCreateBody(input), &record); err != nil {
		return domain.Task{}, err
	}
	return record.toDomain(), nil
}

// UpdateTask uses PATCH for a bare status change and PUT otherwise.
func (c *Client) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	method := http.MethodPut
	if input.Status != nil && input == (domain.UpdateTaskInput{Status: input.Status}) {
		method = http.MethodPatch
	}

	var record taskRecord
	err := c.do(ctx, method, taskPath(id), nil, taskUpdateBody(input), &record)
	if errors.Is(err, errNotFound) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return record.toDomain(), nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, taskPath(id), nil, nil, nil)
	if errors.Is(err, errNotFound) {
		return domain.ErrTaskNotFound
	}
	return err
}
