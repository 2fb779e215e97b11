package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/adapter/http/dto"
	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

var ErrInvalidTimeBlockPayload = errors.New("invalid time block payload")

func BuildCreateTimeBlockInput(req dto.CreateTimeBlockRequest) (domain.CreateTimeBlockInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTimeBlockInput{}, ErrInvalidTimeBlockPayload
	}

	interval, err := BuildInterval(req.StartTime, req.EndTime)
	if err != nil {
		return domain.CreateTimeBlockInput{}, err
	}

	input := domain.CreateTimeBlockInput{
		Title:  title,
		Start:  interval.Start,
		End:    interval.End,
		TaskID: emptyToNil(req.TaskID),
	}
	if req.IsCompleted != nil {
		input.IsCompleted = *req.IsCompleted
	}
	return input, nil
}

var timeBlockUpdateFields = []string{"title", "start_time", "end_time", "task_id", "is_completed"}

// BuildUpdateTimeBlockInput turns a partial body into an update. task_id is
// the only field that accepts null, which detaches the block from its task.
func BuildUpdateTimeBlockInput(req dto.UpdateTimeBlockRequest, raw map[string]json.RawMessage) (domain.UpdateTimeBlockInput, error) {
	body := fields(raw)
	if !body.anyOf(timeBlockUpdateFields...) || body.nullInRequired("title", "start_time", "end_time", "is_completed") {
		return domain.UpdateTimeBlockInput{}, ErrInvalidTimeBlockPayload
	}

	input := domain.UpdateTimeBlockInput{
		TaskID:      emptyToNil(req.TaskID),
		TaskIDSet:   body.has("task_id"),
		IsCompleted: req.IsCompleted,
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTimeBlockInput{}, ErrInvalidTimeBlockPayload
		}
		input.Title = &title
	}
	for _, bound := range []struct {
		value *string
		dst   **time.Time
	}{
		{req.StartTime, &input.Start},
		{req.EndTime, &input.End},
	} {
		if bound.value == nil {
			continue
		}
		t, ok := ParseTimestamp(*bound.value)
		if !ok {
			return domain.UpdateTimeBlockInput{}, ErrInvalidTimeBlockPayload
		}
		*bound.dst = &t
	}

	if input.Start != nil && input.End != nil && !input.Start.Before(*input.End) {
		return domain.UpdateTimeBlockInput{}, domain.ErrInvalidInterval
	}

	return input, nil
}

// BuildInterval parses both ends and requires start < end.
func BuildInterval(startValue, endValue string) (domain.Interval, error) {
	start, ok := ParseTimestamp(startValue)
	if !ok {
		return domain.Interval{}, ErrInvalidTimeBlockPayload
	}
	end, ok := ParseTimestamp(endValue)
	if !ok {
		return domain.Interval{}, ErrInvalidTimeBlockPayload
	}
	interval := domain.Interval{Start: start, End: end}
	if !interval.Valid() {
		return domain.Interval{}, domain.ErrInvalidInterval
	}
	return interval, nil
}
