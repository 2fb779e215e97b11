package ports

import (
	"context"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

type CalendarService interface {
	Day(ctx context.Context, date time.Time) (domain.DayView, error)
	Week(ctx context.Context, date time.Time) (domain.WeekView, error)
	Events(ctx context.Context, from, to time.Time) ([]domain.CalendarEvent, error)
}

type StatsService interface {
	Daily(ctx context.Context, date time.Time) (domain.DailyStats, error)
	Tasks(ctx context.Context, query domain.StatsQuery) (domain.TaskStatistics, error)
	Week(ctx context.Context, date time.Time) (domain.WeekStats, error)
	TimeBlocks(ctx context.Context, from, to time.Time) (domain.TimeBlockStatistics, error)
}

// Store is a complete backend: the REST client or the SQL adapter.
type Store interface {
	TaskStore
	TimeBlockStore
	PreferenceStore
	Ping(ctx context.Context) error
	Name() string
}

type SessionService interface {
	Reset()
}
