package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

const dateLayout = "2006-01-02"

// recordID reads a server identifier sent as either "_id" or "id".
type recordID struct {
	MongoID string `json:"_id"`
	ID      string `json:"id"`
}

func (r recordID) value() string {
	if r.ID != "" {
		return r.ID
	}
	return r.MongoID
}

// reference is a foreign key that the API sends either as a bare id or as the
// populated object.
type reference struct {
	ID string
}

func (r *reference) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		r.ID = ""
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	var obj recordID
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	r.ID = obj.value()
	return nil
}

func (r *reference) ptr() *string {
	if r == nil || r.ID == "" {
		return nil
	}
	id := r.ID
	return &id
}

// wireTime accepts RFC 3339 timestamps and bare ISO dates.
type wireTime struct {
	time.Time
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t.Time = parsed.Local()
		return nil
	}
	parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return fmt.Errorf("time %q: %w", raw, err)
	}
	t.Time = parsed
	return nil
}

func (t *wireTime) ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

type taskRecord struct {
	recordID
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *wireTime  `json:"dueDate"`
	Category    *reference `json:"category"`
	Project     *reference `json:"project"`
	CreatedAt   *wireTime  `json:"createdAt"`
	UpdatedAt   *wireTime  `json:"updatedAt"`
}

func (r taskRecord) toDomain() domain.Task {
	priority := domain.Priority(r.Priority)
	if !priority.Valid() {
		priority = domain.PriorityMedium
	}
	task := domain.Task{
		ID:          r.value(),
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.NormalizeStatus(r.Status, r.Completed),
		Priority:    priority,
		DueDate:     r.DueDate.ptr(),
		CategoryID:  r.Category.ptr(),
		ProjectID:   r.Project.ptr(),
	}
	if ts := r.CreatedAt.ptr(); ts != nil {
		task.CreatedAt = *ts
	}
	if ts := r.UpdatedAt.ptr(); ts != nil {
		task.UpdatedAt = *ts
	}
	return task
}

type timeBlockRecord struct {
	recordID
	Title       string     `json:"title"`
	StartTime   wireTime   `json:"startTime"`
	EndTime     wireTime   `json:"endTime"`
	TaskID      *reference `json:"taskId"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   *wireTime  `json:"createdAt"`
	UpdatedAt   *wireTime  `json:"updatedAt"`
}

func (r timeBlockRecord) toDomain() domain.TimeBlock {
	block := domain.TimeBlock{
		ID:          r.value(),
		Title:       r.Title,
		Start:       r.StartTime.Time,
		End:         r.EndTime.Time,
		TaskID:      r.TaskID.ptr(),
		IsCompleted: r.IsCompleted,
	}
	if ts := r.CreatedAt.ptr(); ts != nil {
		block.CreatedAt = *ts
	}
	if ts := r.UpdatedAt.ptr(); ts != nil {
		block.UpdatedAt = *ts
	}
	return block
}

type preferencesRecord struct {
	StartOfWeek        string `json:"startOfWeek"`
	ShowCompletedTasks *bool  `json:"showCompletedTasks"`
}

func (r preferencesRecord) toDomain() domain.UserPreferences {
	prefs := domain.DefaultPreferences()
	if week := domain.WeekStart(r.StartOfWeek); week.Valid() {
		prefs.StartOfWeek = week
	}
	if r.ShowCompletedTasks != nil {
		prefs.ShowCompletedTasks = *r.ShowCompletedTasks
	}
	return prefs
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func taskCreateBody(in domain.CreateTaskInput) map[string]any {
	body := map[string]any{
		"title":     in.Title,
		"status":    in.Status,
		"completed": in.Status == domain.TaskStatusDone,
		"priority":  in.Priority,
	}
	if in.Description != nil {
		body["description"] = *in.Description
	}
	if in.DueDate != nil {
		body["dueDate"] = formatTime(*in.DueDate)
	}
	if in.CategoryID != nil {
		body["category"] = *in.CategoryID
	}
	if in.ProjectID != nil {
		body["project"] = *in.ProjectID
	}
	return body
}

// taskUpdateBody only carries the fields being changed. Explicit nulls clear
// optional fields. A status change always brings the matching completed flag.
func taskUpdateBody(in domain.UpdateTaskInput) map[string]any {
	body := map[string]any{}
	if in.Title != nil {
		body["title"] = *in.Title
	}
	if in.DescriptionSet {
		body["description"] = nullable(in.Description)
	}
	if in.Status != nil {
		body["status"] = *in.Status
		body["completed"] = *in.Status == domain.TaskStatusDone
	}
	if in.Priority != nil {
		body["priority"] = *in.Priority
	}
	if in.DueDateSet {
		if in.DueDate != nil {
			body["dueDate"] = formatTime(*in.DueDate)
		} else {
			body["dueDate"] = nil
		}
	}
	if in.CategoryIDSet {
		body["category"] = nullable(in.CategoryID)
	}
	if in.ProjectIDSet {
		body["project"] = nullable(in.ProjectID)
	}
	return body
}

func timeBlockCreateBody(in domain.CreateTimeBlockInput) map[string]any {
	body := map[string]any{
		"title":       in.Title,
		"startTime":   formatTime(in.Start),
		"endTime":     formatTime(in.End),
		"isCompleted": in.IsCompleted,
	}
	if in.TaskID != nil {
		body["taskId"] = *in.TaskID
	}
	return body
}

func timeBlockUpdateBody(in domain.UpdateTimeBlockInput) map[string]any {
	body := map[string]any{}
	if in.Title != nil {
		body["title"] = *in.Title
	}
	if in.Start != nil {
		body["startTime"] = formatTime(*in.Start)
	}
	if in.End != nil {
		body["endTime"] = formatTime(*in.End)
	}
	if in.TaskIDSet {
		body["taskId"] = nullable(in.TaskID)
	}
	if in.IsCompleted != nil {
		body["isCompleted"] = *in.IsCompleted
	}
	return body
}

func nullable(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
