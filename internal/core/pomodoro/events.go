package pomodoro

import (
	"time"

	"pomobell/internal/core/model"
)

// EventType defines the type of timer event.
type EventType string

const (
	// EventTick is emitted after a countdown decrement.
	EventTick EventType = "tick"
	// EventStateChange is emitted after a command or an interval transition.
	EventStateChange EventType = "state_change"
	// EventIntervalComplete is emitted exactly once per completed interval.
	EventIntervalComplete EventType = "interval_complete"
)

// Event represents a timer update for observers.
type Event struct {
	Type     EventType
	Snapshot model.Snapshot
	// Finished holds the kind that just completed. Only set on
	// EventIntervalComplete; Snapshot already describes the successor.
	Finished model.IntervalKind
	At       time.Time
}
