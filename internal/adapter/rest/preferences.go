package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

// GetPreferences falls back to the defaults when the user never saved any.
func (c *Client) GetPreferences(ctx context.Context) (domain.UserPreferences, error) {
	var record preferencesRecord
	err := c.do(ctx, http.MethodGet, "/preferences", nil, nil, &record)
	if errors.Is(err, errNotFound) {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.UserPreferences{}, err
	}
	return record.toDomain(), nil
}

func (c *Client) SavePreferences(ctx context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error) {
	body := map[string]any{
		"startOfWeek":        prefs.StartOfWeek,
		"showCompletedTasks": prefs.ShowCompletedTasks,
	}
	var record preferencesRecord
	if err := c.do(ctx, http.MethodPut, "/preferences", nil, body, &record); err != nil {
		return domain.UserPreferences{}, err
	}
	return record.toDomain(), nil
}
