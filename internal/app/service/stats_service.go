package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/planner"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/ports"
)

type StatsService struct {
	tasks  taskSource
	blocks timeBlockSource
	prefs  preferenceSource
	now    func() time.Time
}

func NewStatsService(tasks taskSource, blocks timeBlockSource, prefs preferenceSource, now func() time.Time) *StatsService {
	if now == nil {
		now = time.Now
	}
	return &StatsService{tasks: tasks, blocks: blocks, prefs: prefs, now: now}
}

func (s *StatsService) Daily(ctx context.Context, date time.Time) (domain.DailyStats, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return domain.DailyStats{}, err
	}
	blocks, err := s.blocks.ListForDate(ctx, date)
	if err != nil {
		return domain.DailyStats{}, err
	}
	return planner.DailyStats(tasks, blocks, date), nil
}

func (s *StatsService) Tasks(ctx context.Context, query domain.StatsQuery) (domain.TaskStatistics, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return domain.TaskStatistics{}, err
	}
	return planner.RangeStats(tasks, query, s.now()), nil
}

func (s *StatsService) Week(ctx context.Context, date time.Time) (domain.WeekStats, error) {
	prefs, err := s.prefs.Resolve(ctx)
	if err != nil {
		return domain.WeekStats{}, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return domain.WeekStats{}, err
	}
	w := planner.WeekWindow(date, prefs.StartOfWeek)
	blocks, err := s.blocks.ListForWindow(ctx, w)
	if err != nil {
		return domain.WeekStats{}, err
	}
	return planner.WeekStats(tasks, blocks, w), nil
}

func (s *StatsService) TimeBlocks(ctx context.Context, from, to time.Time) (domain.TimeBlockStatistics, error) {
	w := planner.RangeWindow(from, to)
	if n := len(w.Days()); n > MaxEventRangeDays {
		return domain.TimeBlockStatistics{}, fmt.Errorf("stats range of %d days exceeds %d: %w", n, MaxEventRangeDays, domain.ErrInvalidRange)
	}
	blocks, err := s.blocks.ListForWindow(ctx, w)
	if err != nil {
		return domain.TimeBlockStatistics{}, err
	}
	return planner.TimeBlockStats(blocks), nil
}

var _ ports.StatsService = (*StatsService)(nil)
