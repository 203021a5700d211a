package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurations(t *testing.T) {
	assert.Equal(t, 25*time.Minute, Duration(KindFocus))
	assert.Equal(t, 5*time.Minute, Duration(KindShortBreak))
	assert.Equal(t, 15*time.Minute, Duration(KindLongBreak))
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "Focus", KindFocus.Title())
	assert.Equal(t, "Short Break", KindShortBreak.Title())
	assert.Equal(t, "Long Break", KindLongBreak.Title())
}

func TestSnapshotProgress(t *testing.T) {
	full := Snapshot{Kind: KindFocus, Remaining: FocusDuration}
	assert.Equal(t, 0.0, full.Progress())

	half := Snapshot{Kind: KindShortBreak, Remaining: ShortBreakDuration / 2}
	assert.InDelta(t, 0.5, half.Progress(), 1e-9)

	done := Snapshot{Kind: KindLongBreak, Remaining: 0}
	assert.Equal(t, 1.0, done.Progress())

	overshoot := Snapshot{Kind: KindFocus, Remaining: 2 * FocusDuration}
	assert.Equal(t, 0.0, overshoot.Progress())
}
