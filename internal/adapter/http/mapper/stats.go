package mapper

import (
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

func toBreakdownItem(b domain.Breakdown) dto.BreakdownItem {
	return dto.BreakdownItem{Total: b.Total, Completed: b.Completed, Pending: b.Pending}
}

func ToDailyStatsItem(stats domain.DailyStats) dto.DailyStatsItem {
	return dto.DailyStatsItem{
		Date:            stats.Date.Format(dateLayout),
		TotalTasks:      stats.TotalTasks,
		TotalTimeBlocks: stats.TotalTimeBlocks,
		Total:           stats.Total,
		Completed:       stats.Completed,
		Pending:         stats.Pending,
		CompletionRate:  stats.CompletionRate,
		TaskStats:       toBreakdownItem(stats.TaskStats),
		TimeBlockStats:  toBreakdownItem(stats.TimeBlockStats),
	}
}

func ToTaskStatisticsItem(stats domain.TaskStatistics) dto.TaskStatisticsItem {
	byCategory := make(map[string]int, len(stats.ByCategory))
	for key, count := range stats.ByCategory {
		byCategory[key] = count
	}
	return dto.TaskStatisticsItem{
		Total:          stats.Total,
		Completed:      stats.Completed,
		Pending:        stats.Pending,
		Overdue:        stats.Overdue,
		CompletionRate: stats.CompletionRate,
		ByPriority: map[string]int{
			string(domain.PriorityLow):    stats.ByPriority.Low,
			string(domain.PriorityMedium): stats.ByPriority.Medium,
			string(domain.PriorityHigh):   stats.ByPriority.High,
		},
		ByStatus: map[string]int{
			string(domain.TaskStatusBacklog): stats.ByStatus.Backlog,
			string(domain.TaskStatusTodo):    stats.ByStatus.Todo,
			string(domain.TaskStatusDoing):   stats.ByStatus.Doing,
			string(domain.TaskStatusDone):    stats.ByStatus.Done,
		},
		ByCategory: byCategory,
	}
}

func ToTimeBlockStatisticsItem(stats domain.TimeBlockStatistics) dto.TimeBlockStatisticsItem {
	return dto.TimeBlockStatisticsItem{
		BreakdownItem:    toBreakdownItem(stats.Breakdown),
		CompletionRate:   stats.CompletionRate,
		ScheduledMinutes: stats.ScheduledMinutes,
		CompletedMinutes: stats.CompletedMinutes,
	}
}

func ToWeekStatsItem(stats domain.WeekStats) dto.WeekStatsItem {
	days := make([]dto.DailyStatsItem, 0, len(stats.Days))
	for _, day := range stats.Days {
		days = append(days, ToDailyStatsItem(day))
	}
	return dto.WeekStatsItem{
		Start:             stats.Start.Format(dateLayout),
		End:               stats.End.Format(dateLayout),
		Days:              days,
		Total:             ToDailyStatsItem(stats.Total),
		ProductivityScore: stats.ProductivityScore,
	}
}

func ToPreferencesItem(prefs domain.UserPreferences) dto.PreferencesItem {
	return dto.PreferencesItem{
		StartOfWeek:        string(prefs.StartOfWeek),
		ShowCompletedTasks: prefs.ShowCompletedTasks,
	}
}
