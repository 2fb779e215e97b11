package mapper

import (
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToEventItems(events []domain.CalendarEvent) []dto.EventItem {
	items := make([]dto.EventItem, 0, len(events))
	for _, event := range events {
		items = append(items, ToEventItem(event))
	}
	return items
}

func ToEventItem(event domain.CalendarEvent) dto.EventItem {
	item := dto.EventItem{
		ID:        event.ID.String(),
		Draft:     !event.ID.Persisted(),
		Type:      string(event.Type),
		Title:     event.Title,
		Start:     event.Start.Format(time.RFC3339),
		Completed: event.Completed,
		Color:     event.Color,
	}
	if event.End != nil {
		value := event.End.Format(time.RFC3339)
		item.End = &value
	}
	if event.Task != nil {
		task := ToTaskItem(*event.Task)
		item.Task = &task
	}
	if event.TimeBlock != nil {
		block := ToTimeBlockItem(*event.TimeBlock)
		item.TimeBlock = &block
	}
	return item
}

func ToDayViewResponse(view domain.DayView) dto.DayViewResponse {
	refs := make(map[string]dto.TaskRefResponse, len(view.TaskRefs))
	for blockID, ref := range view.TaskRefs {
		refs[blockID] = ToTaskRefResponse(ref)
	}
	return dto.DayViewResponse{
		Date:       view.Date.Format(dateLayout),
		Events:     ToEventItems(view.Events),
		Tasks:      ToTaskItems(view.Tasks),
		TimeBlocks: ToTimeBlockItems(view.TimeBlocks),
		TaskRefs:   refs,
		Stats:      ToDailyStatsItem(view.Stats),
		Warnings:   nonNilStrings(view.Warnings),
	}
}

func ToWeekViewResponse(view domain.WeekView) dto.WeekViewResponse {
	days := make([]dto.DayViewResponse, 0, len(view.Days))
	for _, day := range view.Days {
		days = append(days, ToDayViewResponse(day))
	}
	return dto.WeekViewResponse{
		Start:       view.Start.Format(dateLayout),
		End:         view.End.Format(dateLayout),
		StartOfWeek: string(view.StartOfWeek),
		Days:        days,
		Stats:       ToWeekStatsItem(view.Stats),
		Warnings:    nonNilStrings(view.Warnings),
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
