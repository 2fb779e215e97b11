package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"
)

func timeBlockPath(id string) string {
	return "/time-blocks/" + url.PathEscape(id)
}

// ListTimeBlocks asks for the blocks of date's local calendar day.
func (c *Client) ListTimeBlocks(ctx context.Context, date time.Time) ([]domain.TimeBlock, error) {
	query := url.Values{"date": {date.Format(dateLayout)}}

	var records []timeBlockRecord
	if err := c.do(ctx, http.MethodGet, "/time-blocks", query, nil, &records); err != nil {
		return nil, collectionError(err)
	}
	blocks := make([]domain.TimeBlock, 0, len(records))
	for _, record := range records {
		blocks = append(blocks, record.toDomain())
	}
	return blocks, nil
}

func (c *Client) CreateTimeBlock(ctx context.Context, input domain.CreateTimeBlockInput) (domain.TimeBlock, error) {
	var record timeBlockRecord
	if err := c.do(ctx, http.MethodPost, "/time-blocks", nil, timeBlockCreateBody(input), &record); err != nil {
		return domain.TimeBlock{}, err
	}
	return record.toDomain(), nil
}

// UpdateTimeBlock uses PATCH for a bare completion change and PUT otherwise.
func (c *Client) UpdateTimeBlock(ctx context.Context, id string, input domain.UpdateTimeBlockInput) (domain.TimeBlock, error) {
	method := http.MethodPut
	if input.IsCompleted != nil && input == (domain.UpdateTimeBlockInput{IsCompleted: input.IsCompleted}) {
		method = http.MethodPatch
	}

	var record timeBlockRecord
	err := c.do(ctx, method, timeBlockPath(id), nil, timeBlockUpdateBody(input), &record)
	if errors.Is(err, errNotFound) {
		return domain.TimeBlock{}, domain.ErrTimeBlockNotFound
	}
	if err != nil {
		return domain.TimeBlock{}, err
	}
	return record.toDomain(), nil
}

func (c *Client) DeleteTimeBlock(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, timeBlockPath(id), nil, nil, nil)
	if errors.Is(err, errNotFound) {
		return domain.ErrTimeBlockNotFound
	}
	return err
}
