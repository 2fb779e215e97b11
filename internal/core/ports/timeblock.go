package ports

import (
	"context"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

// TimeBlockStore lists blocks per local calendar date.
type TimeBlockStore interface {
	ListTimeBlocks(ctx context.Context, date time.Time) ([]domain.TimeBlock, error)
	CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput) (domain.TimeBlock, error)
	UpdateTimeBlock(ctx context.Context, id string, input domain.UpdateTimeBlockInput) (domain.TimeBlock, error)
	DeleteTimeBlock(ctx context.Context, id string) error
}

type TimeBlockService interface {
	ListForDate(ctx context.Context, date time.Time) ([]domain.TimeBlock, error)
	CheckConflicts(ctx context.Context, candidate domain.Interval, excludeID string) ([]domain.TimeBlock, error)
	Create(ctx context.Context, input domain.CreateTimeBlockInput, strict bool) (domain.ScheduleResult, error)
	Update(ctx context.Context, id string, input domain.UpdateTimeBlockInput, strict bool) (domain.ScheduleResult, error)
	SetCompletion(ctx context.Context, id string, completed bool) (domain.TimeBlock, error)
	ToggleCompletion(ctx context.Context, id string) (domain.TimeBlock, error)
	Delete(ctx context.Context, id string) error
	ResolveTask(ctx context.Context, id string) (domain.TaskRef, error)
	SweepDanglingReferences(ctx context.Context, from, to time.Time, apply bool) ([]domain.DanglingRef, error)
}
