package model

import "time"

// IntervalKind identifies one of the three fixed interval types.
type IntervalKind string

const (
	KindFocus      IntervalKind = "focus"
	KindShortBreak IntervalKind = "short_break"
	KindLongBreak  IntervalKind = "long_break"
)

// Fixed interval durations. These are part of the design, not configuration.
const (
	FocusDuration      = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 15 * time.Minute
)

// FocusPerCycle is the number of focus intervals in one full cycle.
const FocusPerCycle = 4

// Duration returns the fixed duration of the given interval kind.
func Duration(kind IntervalKind) time.Duration {
	switch kind {
	case KindShortBreak:
		return ShortBreakDuration
	case KindLongBreak:
		return LongBreakDuration
	default:
		return FocusDuration
	}
}

// Title returns the display name of the given interval kind.
func (kind IntervalKind) Title() string {
	switch kind {
	case KindShortBreak:
		return "Short Break"
	case KindLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

// Snapshot is the read model handed to renderers after every mutation.
type Snapshot struct {
	Kind       IntervalKind
	Remaining  time.Duration
	FocusCount int
	Running    bool
}

// Progress reports how much of the current interval has elapsed, in [0,1].
func (snapshot Snapshot) Progress() float64 {
	total := Duration(snapshot.Kind)
	if total <= 0 {
		return 1
	}
	progress := float64(total-snapshot.Remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
