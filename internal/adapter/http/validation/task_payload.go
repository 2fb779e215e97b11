package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

var taskUpdateFields = []string{"title", "description", "status", "priority", "due_date", "category_id", "project_id"}

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	body := fields(raw)
	if body.nullInRequired("status", "priority") {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      domain.TaskStatusTodo,
		Priority:    domain.PriorityMedium,
		CategoryID:  emptyToNil(req.CategoryID),
		ProjectID:   emptyToNil(req.ProjectID),
	}
	if input.Title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		input.Priority = domain.Priority(*req.Priority)
	}

	dueDate, err := dueDateValue(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}
	input.DueDate = dueDate

	return input, nil
}

// BuildUpdateTaskInput turns a partial body into an update. Title, status and
// priority may be omitted but not nulled; the other fields are cleared by null.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	body := fields(raw)
	if !body.anyOf(taskUpdateFields...) || body.nullInRequired("title", "status", "priority") {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.UpdateTaskInput{
		Description:    req.Description,
		DescriptionSet: body.has("description"),
		DueDateSet:     body.has("due_date"),
		CategoryID:     emptyToNil(req.CategoryID),
		CategoryIDSet:  body.has("category_id"),
		ProjectID:      emptyToNil(req.ProjectID),
		ProjectIDSet:   body.has("project_id"),
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &title
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		input.Priority = &priority
	}

	dueDate, err := dueDateValue(req.DueDate)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}
	input.DueDate = dueDate

	return input, nil
}

func dueDateValue(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	dueDate, ok := ParseDueDate(*value)
	if !ok {
		return nil, ErrInvalidTaskPayload
	}
	return &dueDate, nil
}
