package mapper

import (
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: copyString(task.Description),
		Status:      string(task.Status),
		Completed:   task.Completed(),
		Priority:    string(task.Priority),
		CategoryID:  copyString(task.CategoryID),
		ProjectID:   copyString(task.ProjectID),
		CreatedAt:   formatTimestamp(task.CreatedAt),
		UpdatedAt:   formatTimestamp(task.UpdatedAt),
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(time.RFC3339)
		item.DueDate = &value
	}

	return item
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
