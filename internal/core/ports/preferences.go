package ports

import (
	"context"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

type PreferenceStore interface {
	GetPreferences(ctx context.Context) (domain.UserPreferences, error)
	SavePreferences(ctx context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error)
}

type PreferenceService interface {
	Resolve(ctx context.Context) (domain.UserPreferences, error)
	Update(ctx context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error)
}
