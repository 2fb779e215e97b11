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

const selectTimeBlockColumns = `
SELECT id, title, start_time, end_time, task_id, is_completed, created_at, updated_at
FROM time_blocks`

const listTimeBlocksQuery = selectTimeBlockColumns + `
WHERE start_time >= ? AND start_time < ?
ORDER BY start_time;
`

const getTimeBlockQuery = selectTimeBlockColumns + `
WHERE id = ?;
`

const insertTimeBlockQuery = `
INSERT INTO time_blocks (id, title, start_time, end_time, task_id, is_completed)
VALUES (:id, :title, :start_time, :end_time, :task_id, :is_completed);
`

type TimeBlockRepository struct {
	db *sqlx.DB
}

type timeBlockRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	StartTime   time.Time      `db:"start_time"`
	EndTime     time.Time      `db:"end_time"`
	TaskID      sql.NullString `db:"task_id"`
	IsCompleted bool           `db:"is_completed"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TimeBlockStore = (*TimeBlockRepository)(nil)

func NewTimeBlockRepository(db *sqlx.DB) *TimeBlockRepository {
	return &TimeBlockRepository{db: db}
}

// ListTimeBlocks returns the blocks starting on date's local calendar day.
func (r *TimeBlockRepository) ListTimeBlocks(ctx context.Context, date time.Time) ([]domain.TimeBlock, error) {
	y, m, d := date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	to := from.AddDate(0, 0, 1)

	var rows []timeBlockRow
	if err := r.db.SelectContext(ctx, &rows, listTimeBlocksQuery, from, to); err != nil {
		return nil, err
	}

	blocks := make([]domain.TimeBlock, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, mapTimeBlockRow(row))
	}
	return blocks, nil
}

func (r *TimeBlockRepository) getTimeBlock(ctx context.Context, id string) (domain.TimeBlock, error) {
	var row timeBlockRow
	err := r.db.GetContext(ctx, &row, getTimeBlockQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TimeBlock{}, domain.ErrTimeBlockNotFound
	}
	if err != nil {
		return domain.TimeBlock{}, err
	}
	return mapTimeBlockRow(row), nil
}

func (r *TimeBlockRepository) CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput) (domain.TimeBlock, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.TimeBlock{}, err
	}

	args := map[string]any{
		"id":           id.String(),
		"title":        input.Title,
		"start_time":   input.Start,
		"end_time":     input.End,
		"task_id":      nullString(input.TaskID),
		"is_completed": input.IsCompleted,
	}
	if _, err := r.db.NamedExecContext(ctx, insertTimeBlockQuery, args); err != nil {
		return domain.TimeBlock{}, err
	}
	return r.getTimeBlock(ctx, id.String())
}

func (r *TimeBlockRepository) UpdateTimeBlock(ctx context.Context, id string, input domain.UpdateTimeBlockInput) (domain.TimeBlock, error) {
	var sets []string
	args := map[string]any{"id": id}
	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = :%s", column, column))
		args[column] = value
	}

	if input.Title != nil {
		set("title", *input.Title)
	}
	if input.Start != nil {
		set("start_time", *input.Start)
	}
	if input.End != nil {
		set("end_time", *input.End)
	}
	if input.TaskIDSet {
		set("task_id", nullString(input.TaskID))
	}
	if input.IsCompleted != nil {
		set("is_completed", *input.IsCompleted)
	}

	if len(sets) > 0 {
		query := "UPDATE time_blocks SET " + strings.Join(sets, ", ") + " WHERE id = :id"
		if _, err := r.db.NamedExecContext(ctx, query, args); err != nil {
			return domain.TimeBlock{}, err
		}
	}
	return r.getTimeBlock(ctx, id)
}

func (r *TimeBlockRepository) DeleteTimeBlock(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM time_blocks WHERE id = ?", id)
	if err != nil {
		return err
	}
	return expectAffected(res, domain.ErrTimeBlockNotFound)
}

func mapTimeBlockRow(row timeBlockRow) domain.TimeBlock {
	block := domain.TimeBlock{
		ID:          row.ID,
		Title:       row.Title,
		Start:       row.StartTime,
		End:         row.EndTime,
		IsCompleted: row.IsCompleted,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.TaskID.Valid {
		value := row.TaskID.String
		block.TaskID = &value
	}
	return block
}
