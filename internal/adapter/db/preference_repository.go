package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
)

// Preferences live in a single row.
const preferencesRowID = 1

const upsertPreferencesQuery = `
INSERT INTO user_preferences (id, start_of_week, show_completed_tasks)
VALUES (:id, :start_of_week, :show_completed_tasks)
ON DUPLICATE KEY UPDATE
  start_of_week = VALUES(start_of_week),
  show_completed_tasks = VALUES(show_completed_tasks);
`

type PreferenceRepository struct {
	db *sqlx.DB
}

type preferencesRow struct {
	ID                 int    `db:"id"`
	StartOfWeek        string `db:"start_of_week"`
	ShowCompletedTasks bool   `db:"show_completed_tasks"`
}

var _ ports.PreferenceStore = (*PreferenceRepository)(nil)

func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) GetPreferences(ctx context.Context) (domain.UserPreferences, error) {
	var row preferencesRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, start_of_week, show_completed_tasks FROM user_preferences WHERE id = ?", preferencesRowID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.UserPreferences{}, err
	}

	prefs := domain.UserPreferences{
		StartOfWeek:        domain.WeekStart(row.StartOfWeek),
		ShowCompletedTasks: row.ShowCompletedTasks,
	}
	if !prefs.StartOfWeek.Valid() {
		prefs.StartOfWeek = domain.DefaultPreferences().StartOfWeek
	}
	return prefs, nil
}

func (r *PreferenceRepository) SavePreferences(ctx context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error) {
	row := preferencesRow{
		ID:                 preferencesRowID,
		StartOfWeek:        string(prefs.StartOfWeek),
		ShowCompletedTasks: prefs.ShowCompletedTasks,
	}
	if _, err := r.db.NamedExecContext(ctx, upsertPreferencesQuery, row); err != nil {
		return domain.UserPreferences{}, err
	}
	return r.GetPreferences(ctx)
}
