package validation

import (
	"errors"
	"strings"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

var ErrInvalidStatsQuery = errors.New("invalid stats query")

// BuildStatsQuery reads the from/to/project_id/category_id query values.
func BuildStatsQuery(from, to, projectID, categoryID string) (domain.StatsQuery, error) {
	fromDate, ok := ParseOptionalDate(from)
	if !ok {
		return domain.StatsQuery{}, ErrInvalidStatsQuery
	}
	toDate, ok := ParseOptionalDate(to)
	if !ok {
		return domain.StatsQuery{}, ErrInvalidStatsQuery
	}
	if fromDate != nil && toDate != nil && toDate.Before(*fromDate) {
		return domain.StatsQuery{}, ErrInvalidStatsQuery
	}

	return domain.StatsQuery{
		From:       fromDate,
		To:         toDate,
		ProjectID:  emptyToNil(&projectID),
		CategoryID: emptyToNil(&categoryID),
	}, nil
}

// BuildPreferences merges a partial preferences update into current.
func BuildPreferences(current domain.UserPreferences, startOfWeek *string, showCompleted *bool) (domain.UserPreferences, error) {
	if startOfWeek != nil {
		week := domain.WeekStart(strings.ToLower(strings.TrimSpace(*startOfWeek)))
		if !week.Valid() {
			return domain.UserPreferences{}, errors.New("invalid start of week")
		}
		current.StartOfWeek = week
	}
	if showCompleted != nil {
		current.ShowCompletedTasks = *showCompleted
	}
	return current, nil
}
