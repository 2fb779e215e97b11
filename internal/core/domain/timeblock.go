package domain

import "time"

// Interval is a half-open span [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// TimeBlock is a scheduled interval, optionally linked to a task. TaskID may
// point at a task that no longer exists.
type TimeBlock struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	TaskID      *string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b TimeBlock) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

type CreateTimeBlockInput struct {
	Title       string
	Start       time.Time
	End         time.Time
	TaskID      *string
	IsCompleted bool
}

type UpdateTimeBlockInput struct {
	Title       *string
	Start       *time.Time
	End         *time.Time
	TaskID      *string
	TaskIDSet   bool
	IsCompleted *bool
}

func (in UpdateTimeBlockInput) Apply(block TimeBlock) TimeBlock {
	if in.Title != nil {
		block.Title = *in.Title
	}
	if in.Start != nil {
		block.Start = *in.Start
	}
	if in.End != nil {
		block.End = *in.End
	}
	if in.TaskIDSet {
		block.TaskID = in.TaskID
	}
	if in.IsCompleted != nil {
		block.IsCompleted = *in.IsCompleted
	}
	return block
}

// TaskRef is the outcome of resolving a time block's task reference.
type TaskRef struct {
	TaskID *string
	Task   *Task
	Found  bool
}

// DanglingRef is a time block whose task reference no longer resolves.
type DanglingRef struct {
	TimeBlockID string
	TaskID      string
	Cleared     bool
}
