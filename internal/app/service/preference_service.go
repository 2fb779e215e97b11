package service

import (
	"context"
	"fmt"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/cache"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
)

// PreferenceService resolves the user's calendar preferences, falling back to
// the defaults when they were never fetched.
type PreferenceService struct {
	store ports.PreferenceStore
	value *cache.Value[domain.UserPreferences]
}

func NewPreferenceService(store ports.PreferenceStore, opts ...cache.Option) *PreferenceService {
	return &PreferenceService{
		store: store,
		value: cache.NewValue("preferences", store.GetPreferences, opts...),
	}
}

func (s *PreferenceService) Resolve(ctx context.Context) (domain.UserPreferences, error) {
	prefs, ok, err := s.value.Get(ctx)
	if !ok {
		prefs = domain.DefaultPreferences()
	}
	return sanitize(prefs), err
}

func (s *PreferenceService) Update(ctx context.Context, prefs domain.UserPreferences) (domain.UserPreferences, error) {
	saved, err := s.store.SavePreferences(ctx, sanitize(prefs))
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("save preferences: %w", err)
	}
	saved = sanitize(saved)
	s.value.Set(saved)
	return saved, nil
}

func (s *PreferenceService) Status() cache.Status {
	return s.value.Status()
}

func (s *PreferenceService) Reset() {
	s.value.Reset()
}

func sanitize(prefs domain.UserPreferences) domain.UserPreferences {
	if !prefs.StartOfWeek.Valid() {
		prefs.StartOfWeek = domain.DefaultPreferences().StartOfWeek
	}
	return prefs
}

var _ ports.PreferenceService = (*PreferenceService)(nil)
