package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
)

const selectTaskColumns = `
SELECT id, title, description, status, priority, due_date, category_id, project_id, created_at, updated_at
FROM tasks`

const listTasksQuery = selectTaskColumns + `
ORDER BY due_date IS NULL, due_date, created_at;
`

const getTaskQuery = selectTaskColumns + `
WHERE id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, status, priority, due_date, category_id, project_id)
VALUES (:id, :title, :description, :status, :priority, :due_date, :category_id, :project_id);
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	DueDate     sql.NullTime   `db:"due_date"`
	CategoryID  sql.NullString `db:"category_id"`
	ProjectID   sql.NullString `db:"project_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskStore = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, getTaskQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	task := mapTaskRowToDomainTask(row)
	return &task, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.Task{}, err
	}

	args := map[string]any{
		"id":          id.String(),
		"title":       input.Title,
		"description": nullString(input.Description),
		"status":      string(input.Status),
		"priority":    string(input.Priority),
		"due_date":    nullTime(input.DueDate),
		"category_id": nullString(input.CategoryID),
		"project_id":  nullString(input.ProjectID),
	}
	if _, err := r.db.NamedExecContext(ctx, insertTaskQuery, args); err != nil {
		return domain.Task{}, err
	}

	task, err := r.GetTask(ctx, id.String())
	if err != nil {
		return domain.Task{}, err
	}
	if task == nil {
		return domain.Task{}, fmt.Errorf("task %s vanished after insert", id)
	}
	return *task, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	var sets []string
	args := map[string]any{"id": id}
	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = :%s", column, column))
		args[column] = value
	}

	if input.Title != nil {
		set("title", *input.Title)
	}
	if input.DescriptionSet {
		set("description", nullString(input.Description))
	}
	if input.Status != nil {
		set("status", string(*input.Status))
	}
	if input.Priority != nil {
		set("priority", string(*input.Priority))
	}
	if input.DueDateSet {
		set("due_date", nullTime(input.DueDate))
	}
	if input.CategoryIDSet {
		set("category_id", nullString(input.CategoryID))
	}
	if input.ProjectIDSet {
		set("project_id", nullString(input.ProjectID))
	}

	if len(sets) > 0 {
		query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = :id"
		if _, err := r.db.NamedExecContext(ctx, query, args); err != nil {
			return domain.Task{}, err
		}
	}

	task, err := r.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if task == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return *task, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	return expectAffected(res, domain.ErrTaskNotFound)
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	priority := domain.Priority(row.Priority)
	if !priority.Valid() {
		priority = domain.PriorityMedium
	}

	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.NormalizeStatus(row.Status, false),
		Priority:  priority,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.CategoryID.Valid {
		value := row.CategoryID.String
		task.CategoryID = &value
	}

	if row.ProjectID.Valid {
		value := row.ProjectID.String
		task.ProjectID = &value
	}

	return task
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

// expectAffected returns notFound when res touched no row.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
