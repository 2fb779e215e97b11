package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/cache"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/planner"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
)

// DateLayout is the ISO date used for per-day partitions and query strings.
const DateLayout = "2006-01-02"

// maxSweepDays bounds SweepDanglingReferences to a quarter of a year.
const maxSweepDays = 92

type taskLookup interface {
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Status() cache.Status
}

type TimeBlockService struct {
	store  ports.TimeBlockStore
	tasks  taskLookup
	blocks *cache.Group[domain.TimeBlock]
	loc    *time.Location
}

func NewTimeBlockService(store ports.TimeBlockStore, tasks taskLookup, loc *time.Location, opts ...cache.Option) *TimeBlockService {
	if loc == nil {
		loc = time.Local
	}
	s := &TimeBlockService{store: store, tasks: tasks, loc: loc}
	s.blocks = cache.NewGroup("time-blocks", s.fetchDay, timeBlockKey, opts...)
	return s
}

func timeBlockKey(b domain.TimeBlock) string {
	return b.ID
}

func (s *TimeBlockService) fetchDay(ctx context.Context, day string) ([]domain.TimeBlock, error) {
	date, err := time.ParseInLocation(DateLayout, day, s.loc)
	if err != nil {
		return nil, err
	}
	return s.store.ListTimeBlocks(ctx, date)
}

func (s *TimeBlockService) dayKey(t time.Time) string {
	return t.In(s.loc).Format(DateLayout)
}

func (s *TimeBlockService) ListForDate(ctx context.Context, date time.Time) ([]domain.TimeBlock, error) {
	return s.blocks.Get(ctx, s.dayKey(date))
}

// ListForWindow collects the blocks of every day in w. It stops at the first
// hard error; transient failures already degraded to cached or empty days.
func (s *TimeBlockService) ListForWindow(ctx context.Context, w planner.Window) ([]domain.TimeBlock, error) {
	var out []domain.TimeBlock
	for _, day := range w.Days() {
		blocks, err := s.ListForDate(ctx, day)
		if err != nil {
			return out, err
		}
		out = append(out, blocks...)
	}
	return out, nil
}

func (s *TimeBlockService) CheckConflicts(ctx context.Context, candidate domain.Interval, excludeID string) ([]domain.TimeBlock, error) {
	if !candidate.Valid() {
		return nil, domain.ErrInvalidInterval
	}
	existing, err := s.ListForDate(ctx, candidate.Start)
	if err != nil {
		return nil, err
	}
	return planner.Conflicts(candidate, existing, excludeID), nil
}

func (s *TimeBlockService) Create(ctx context.Context, input domain.CreateTimeBlockInput, strict bool) (domain.ScheduleResult, error) {
	candidate := domain.Interval{Start: input.Start, End: input.End}
	conflicts, err := s.CheckConflicts(ctx, candidate, "")
	if err != nil {
		return domain.ScheduleResult{}, err
	}
	if strict && len(conflicts) > 0 {
		return domain.ScheduleResult{Conflicts: conflicts}, domain.ErrTimeBlockConflict
	}

	block, err := s.store.CreateTimeBlock(ctx, input)
	if err != nil {
		return domain.ScheduleResult{}, fmt.Errorf("create time block: %w", err)
	}
	s.blocks.Upsert(s.dayKey(block.Start), block)
	return domain.ScheduleResult{TimeBlock: block, Conflicts: conflicts}, nil
}

func (s *TimeBlockService) Update(ctx context.Context, id string, input domain.UpdateTimeBlockInput, strict bool) (domain.ScheduleResult, error) {
	var conflicts []domain.TimeBlock
	if input.Start != nil || input.End != nil {
		candidate, err := s.candidateFor(ctx, id, input)
		if err != nil {
			return domain.ScheduleResult{}, err
		}
		found, err := s.CheckConflicts(ctx, candidate, id)
		if err != nil {
			return domain.ScheduleResult{}, err
		}
		conflicts = found
		if strict && len(conflicts) > 0 {
			return domain.ScheduleResult{Conflicts: conflicts}, domain.ErrTimeBlockConflict
		}
	}

	block, err := s.store.UpdateTimeBlock(ctx, id, input)
	if err != nil {
		return domain.ScheduleResult{}, fmt.Errorf("update time block %s: %w", id, err)
	}
	s.blocks.Upsert(s.dayKey(block.Start), block)
	return domain.ScheduleResult{TimeBlock: block, Conflicts: conflicts}, nil
}

// candidateFor merges a partial update with the current block. A block that
// is not cached is looked up on the day of the bound being changed, and on the
// day before when only the end moves.
func (s *TimeBlockService) candidateFor(ctx context.Context, id string, input domain.UpdateTimeBlockInput) (domain.Interval, error) {
	if input.Start != nil && input.End != nil {
		return domain.Interval{Start: *input.Start, End: *input.End}, nil
	}
	if current, ok := s.blocks.Find(id); ok {
		return input.Apply(current).Interval(), nil
	}

	var days []time.Time
	if input.Start != nil {
		days = append(days, *input.Start)
	} else {
		days = append(days, *input.End, input.End.AddDate(0, 0, -1))
	}
	for _, day := range days {
		if _, err := s.ListForDate(ctx, day); err != nil {
			return domain.Interval{}, err
		}
		if current, ok := s.blocks.Find(id); ok {
			return input.Apply(current).Interval(), nil
		}
	}
	return domain.Interval{}, domain.ErrTimeBlockNotFound
}

func (s *TimeBlockService) SetCompletion(ctx context.Context, id string, completed bool) (domain.TimeBlock, error) {
	result, err := s.Update(ctx, id, domain.UpdateTimeBlockInput{IsCompleted: &completed}, false)
	return result.TimeBlock, err
}

func (s *TimeBlockService) ToggleCompletion(ctx context.Context, id string) (domain.TimeBlock, error) {
	current, ok := s.blocks.Find(id)
	if !ok {
		return domain.TimeBlock{}, domain.ErrTimeBlockNotFound
	}
	return s.SetCompletion(ctx, id, !current.IsCompleted)
}

func (s *TimeBlockService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTimeBlock(ctx, id); err != nil {
		return fmt.Errorf("delete time block %s: %w", id, err)
	}
	s.blocks.Remove(id)
	return nil
}

// ResolveTask returns the task a cached block points to. A deleted task is not
// an error: the reference comes back with Found=false.
func (s *TimeBlockService) ResolveTask(ctx context.Context, id string) (domain.TaskRef, error) {
	block, ok := s.blocks.Find(id)
	if !ok {
		return domain.TaskRef{}, domain.ErrTimeBlockNotFound
	}
	return s.resolve(ctx, block)
}

func (s *TimeBlockService) resolve(ctx context.Context, block domain.TimeBlock) (domain.TaskRef, error) {
	ref := domain.TaskRef{TaskID: block.TaskID}
	if block.TaskID == nil || *block.TaskID == "" {
		return ref, nil
	}
	task, err := s.tasks.Get(ctx, *block.TaskID)
	if err != nil {
		return ref, err
	}
	ref.Task = task
	ref.Found = task != nil
	return ref, nil
}

// SweepDanglingReferences finds blocks between from and to whose task no
// longer exists, checked against one listing of the tasks. References are only
// cleared when apply is set, and each one is confirmed with the store first.
func (s *TimeBlockService) SweepDanglingReferences(ctx context.Context, from, to time.Time, apply bool) ([]domain.DanglingRef, error) {
	w := planner.RangeWindow(from.In(s.loc), to.In(s.loc))
	if len(w.Days()) > maxSweepDays {
		return nil, fmt.Errorf("sweep window of %d days exceeds %d: %w", len(w.Days()), maxSweepDays, domain.ErrInvalidRange)
	}

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	if st := s.tasks.Status(); !st.HasValue && st.LastErr != nil {
		return nil, fmt.Errorf("sweep needs the task list: %w", domain.ErrUpstream)
	}
	blocks, err := s.ListForWindow(ctx, w)
	if err != nil {
		return nil, err
	}

	var refs []domain.DanglingRef
	for _, dangling := range planner.DanglingRefs(blocks, tasks) {
		if apply {
			gone, err := s.confirmMissing(ctx, dangling.TaskID)
			if err != nil {
				return refs, err
			}
			if !gone {
				continue
			}
			if _, err := s.Update(ctx, dangling.TimeBlockID, domain.UpdateTimeBlockInput{TaskIDSet: true}, false); err != nil {
				if !errors.Is(err, domain.ErrTimeBlockNotFound) {
					return refs, err
				}
			} else {
				dangling.Cleared = true
			}
		}
		zap.L().Info("dangling task reference",
			zap.String("time_block_id", dangling.TimeBlockID),
			zap.String("task_id", dangling.TaskID),
			zap.Bool("cleared", dangling.Cleared),
		)
		refs = append(refs, dangling)
	}
	return refs, nil
}

// confirmMissing asks the store whether the task is really gone; the listing
// the sweep ran against may be stale.
func (s *TimeBlockService) confirmMissing(ctx context.Context, taskID string) (bool, error) {
	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return false, fmt.Errorf("confirm task %s: %w", taskID, err)
	}
	return task == nil, nil
}

func (s *TimeBlockService) Status(date time.Time) cache.Status {
	return s.blocks.Status(s.dayKey(date))
}

func (s *TimeBlockService) Reset() {
	s.blocks.Reset()
}

var _ ports.TimeBlockService = (*TimeBlockService)(nil)
