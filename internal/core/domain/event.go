package domain

import (
	"fmt"
	"time"
)

type EventType string

const (
	EventTypeTask      EventType = "task"
	EventTypeTimeBlock EventType = "timeblock"
)

const (
	ColorTaskPending      = "#3b82f6"
	ColorTaskCompleted    = "#22c55e"
	ColorTimeBlockPending = "#8b5cf6"
	ColorTimeBlockDone    = "#10b981"
)

// EventID identifies a calendar event. Persisted ids come from the source
// record; draft ids belong to unsaved items and are never rendered in the
// persisted "<type>-<id>" form.
type EventID struct {
	Type     EventType
	SourceID string
	draft    int
	isDraft  bool
}

func PersistedEventID(t EventType, sourceID string) EventID {
	return EventID{Type: t, SourceID: sourceID}
}

func DraftEventID(t EventType, n int) EventID {
	return EventID{Type: t, draft: n, isDraft: true}
}

func (id EventID) Persisted() bool {
	return !id.isDraft
}

func (id EventID) String() string {
	if id.isDraft {
		return fmt.Sprintf("draft:%s#%d", id.Type, id.draft)
	}
	return fmt.Sprintf("%s-%s", id.Type, id.SourceID)
}

// CalendarEvent is a display projection of a task or time block.
type CalendarEvent struct {
	ID        EventID
	Title     string
	Start     time.Time
	End       *time.Time
	Type      EventType
	Completed bool
	Color     string
	Task      *Task
	TimeBlock *TimeBlock
}

func EventColor(t EventType, completed bool) string {
	switch {
	case t == EventTypeTask && completed:
		return ColorTaskCompleted
	case t == EventTypeTask:
		return ColorTaskPending
	case completed:
		return ColorTimeBlockDone
	default:
		return ColorTimeBlockPending
	}
}
