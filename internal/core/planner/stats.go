package planner

import (
	"math"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

// Weights of the productivity score. Task completion dominates because blocks
// are usually planned around tasks.
const (
	taskScoreWeight  = 0.6
	blockScoreWeight = 0.4
)

// CompletionRate is round(100*completed/total), and 0 for an empty total.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func taskBreakdown(tasks []domain.Task) domain.Breakdown {
	b := domain.Breakdown{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed() {
			b.Completed++
		}
	}
	b.Pending = b.Total - b.Completed
	return b
}

func timeBlockBreakdown(blocks []domain.TimeBlock) domain.Breakdown {
	b := domain.Breakdown{Total: len(blocks)}
	for _, block := range blocks {
		if block.IsCompleted {
			b.Completed++
		}
	}
	b.Pending = b.Total - b.Completed
	return b
}

// DailyStats reduces the tasks due and blocks starting on date.
func DailyStats(tasks []domain.Task, blocks []domain.TimeBlock, date time.Time) domain.DailyStats {
	taskStats := taskBreakdown(TasksForDate(tasks, date))
	blockStats := timeBlockBreakdown(TimeBlocksForDate(blocks, date))
	return combine(StartOfDay(date), taskStats, blockStats)
}

func combine(date time.Time, taskStats, blockStats domain.Breakdown) domain.DailyStats {
	total := taskStats.Total + blockStats.Total
	completed := taskStats.Completed + blockStats.Completed
	return domain.DailyStats{
		Date:            date,
		TotalTasks:      taskStats.Total,
		TotalTimeBlocks: blockStats.Total,
		Total:           total,
		Completed:       completed,
		Pending:         total - completed,
		CompletionRate:  CompletionRate(completed, total),
		TaskStats:       taskStats,
		TimeBlockStats:  blockStats,
	}
}

// WeekStats computes per-day statistics over w plus their sum.
func WeekStats(tasks []domain.Task, blocks []domain.TimeBlock, w Window) domain.WeekStats {
	out := domain.WeekStats{Start: w.Start, End: w.End}
	var taskSum, blockSum domain.Breakdown
	for _, day := range w.Days() {
		stats := DailyStats(tasks, blocks, day)
		out.Days = append(out.Days, stats)
		taskSum = addBreakdown(taskSum, stats.TaskStats)
		blockSum = addBreakdown(blockSum, stats.TimeBlockStats)
	}
	out.Total = combine(w.Start, taskSum, blockSum)
	out.ProductivityScore = ProductivityScore(
		CompletionRate(taskSum.Completed, taskSum.Total),
		CompletionRate(blockSum.Completed, blockSum.Total),
		taskSum.Total > 0,
		blockSum.Total > 0,
	)
	return out
}

func addBreakdown(a, b domain.Breakdown) domain.Breakdown {
	return domain.Breakdown{
		Total:     a.Total + b.Total,
		Completed: a.Completed + b.Completed,
		Pending:   a.Pending + b.Pending,
	}
}

// RangeStats computes task statistics for the tasks matching query. A task is
// overdue when its due date is strictly before now and it is not done.
func RangeStats(tasks []domain.Task, query domain.StatsQuery, now time.Time) domain.TaskStatistics {
	stats := domain.TaskStatistics{ByCategory: map[string]int{}}

	for _, task := range tasks {
		if !matchesQuery(task, query) {
			continue
		}

		stats.Total++
		if task.Completed() {
			stats.Completed++
		} else if task.DueDate != nil && task.DueDate.Before(now) {
			stats.Overdue++
		}

		switch task.Priority {
		case domain.PriorityLow:
			stats.ByPriority.Low++
		case domain.PriorityMedium:
			stats.ByPriority.Medium++
		case domain.PriorityHigh:
			stats.ByPriority.High++
		}

		switch task.Status {
		case domain.TaskStatusBacklog:
			stats.ByStatus.Backlog++
		case domain.TaskStatusTodo:
			stats.ByStatus.Todo++
		case domain.TaskStatusDoing:
			stats.ByStatus.Doing++
		case domain.TaskStatusDone:
			stats.ByStatus.Done++
		}

		category := domain.UncategorizedKey
		if task.CategoryID != nil && *task.CategoryID != "" {
			category = *task.CategoryID
		}
		stats.ByCategory[category]++
	}

	stats.Pending = stats.Total - stats.Completed
	stats.CompletionRate = CompletionRate(stats.Completed, stats.Total)
	return stats
}

func matchesQuery(task domain.Task, query domain.StatsQuery) bool {
	if query.ProjectID != nil && (task.ProjectID == nil || *task.ProjectID != *query.ProjectID) {
		return false
	}
	if query.CategoryID != nil && (task.CategoryID == nil || *task.CategoryID != *query.CategoryID) {
		return false
	}
	if query.From == nil && query.To == nil {
		return true
	}
	// Undated tasks only count for unbounded queries.
	if task.DueDate == nil {
		return false
	}
	if query.From != nil {
		from := StartOfDay(*query.From)
		if StartOfDay(task.DueDate.In(from.Location())).Before(from) {
			return false
		}
	}
	if query.To != nil {
		to := StartOfDay(*query.To)
		if StartOfDay(task.DueDate.In(to.Location())).After(to) {
			return false
		}
	}
	return true
}

// TimeBlockStats summarises a set of blocks, including scheduled minutes.
func TimeBlockStats(blocks []domain.TimeBlock) domain.TimeBlockStatistics {
	stats := domain.TimeBlockStatistics{Breakdown: timeBlockBreakdown(blocks)}
	for _, block := range blocks {
		minutes := int(block.Interval().Duration() / time.Minute)
		if minutes < 0 {
			continue
		}
		stats.ScheduledMinutes += minutes
		if block.IsCompleted {
			stats.CompletedMinutes += minutes
		}
	}
	stats.CompletionRate = CompletionRate(stats.Completed, stats.Total)
	return stats
}

// ProductivityScore blends the task and time block completion rates. When only
// one source has data its rate is used alone; with neither the score is 0.
func ProductivityScore(taskRate, blockRate int, hasTasks, hasBlocks bool) int {
	switch {
	case hasTasks && hasBlocks:
		return int(math.Round(taskScoreWeight*float64(taskRate) + blockScoreWeight*float64(blockRate)))
	case hasTasks:
		return taskRate
	case hasBlocks:
		return blockRate
	default:
		return 0
	}
}
