package mapper

import (
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

func ToTimeBlockItems(blocks []domain.TimeBlock) []dto.TimeBlockItem {
	items := make([]dto.TimeBlockItem, 0, len(blocks))
	for _, block := range blocks {
		items = append(items, ToTimeBlockItem(block))
	}
	return items
}

func ToTimeBlockItem(block domain.TimeBlock) dto.TimeBlockItem {
	return dto.TimeBlockItem{
		ID:              block.ID,
		Title:           block.Title,
		StartTime:       block.Start.Format(time.RFC3339),
		EndTime:         block.End.Format(time.RFC3339),
		DurationMinutes: int(block.Interval().Duration() / time.Minute),
		TaskID:          copyString(block.TaskID),
		IsCompleted:     block.IsCompleted,
	}
}

func ToScheduleResponse(result domain.ScheduleResult) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		TimeBlock: ToTimeBlockItem(result.TimeBlock),
		Conflict:  result.HasConflict(),
		Conflicts: ToTimeBlockItems(result.Conflicts),
	}
}

func ToConflictResponse(conflicts []domain.TimeBlock) dto.ConflictResponse {
	return dto.ConflictResponse{
		Conflict:  len(conflicts) > 0,
		Conflicts: ToTimeBlockItems(conflicts),
	}
}

func ToTaskRefResponse(ref domain.TaskRef) dto.TaskRefResponse {
	resp := dto.TaskRefResponse{
		TaskID: copyString(ref.TaskID),
		Found:  ref.Found,
	}
	if ref.Task != nil {
		item := ToTaskItem(*ref.Task)
		resp.Task = &item
	}
	return resp
}

func ToDanglingRefItems(refs []domain.DanglingRef) []dto.DanglingRefItem {
	items := make([]dto.DanglingRefItem, 0, len(refs))
	for _, ref := range refs {
		items = append(items, dto.DanglingRefItem{
			TimeBlockID: ref.TimeBlockID,
			TaskID:      ref.TaskID,
			Cleared:     ref.Cleared,
		})
	}
	return items
}
