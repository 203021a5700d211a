package pomodoro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomobell/internal/core/model"
)

func tickN(timer *Timer, n int) {
	for i := 0; i < n; i++ {
		timer.Tick()
	}
}

func ticksIn(duration time.Duration) int {
	return int(duration / time.Second)
}

func TestInitialState(t *testing.T) {
	timer := New(Options{})

	snapshot := timer.Snapshot()
	assert.Equal(t, model.KindFocus, snapshot.Kind)
	assert.Equal(t, model.FocusDuration, snapshot.Remaining)
	assert.Equal(t, 0, snapshot.FocusCount)
	assert.False(t, snapshot.Running)
}

func TestTickWhilePausedIsNoop(t *testing.T) {
	timer := New(Options{})

	tickN(timer, 100)

	snapshot := timer.Snapshot()
	assert.Equal(t, model.FocusDuration, snapshot.Remaining)
	assert.Equal(t, model.KindFocus, snapshot.Kind)
}

func TestPausePreservesCountdownPosition(t *testing.T) {
	timer := New(Options{})
	timer.Start()
	tickN(timer, 10)

	timer.Pause()
	paused := timer.Snapshot()
	require.Equal(t, model.FocusDuration-10*time.Second, paused.Remaining)
	require.False(t, paused.Running)

	tickN(timer, 500)
	assert.Equal(t, paused.Remaining, timer.Snapshot().Remaining)
	assert.Equal(t, paused.Kind, timer.Snapshot().Kind)

	timer.Start()
	timer.Tick()
	assert.Equal(t, paused.Remaining-time.Second, timer.Snapshot().Remaining)
}

func TestRemainingNonIncreasingWhileRunning(t *testing.T) {
	timer := New(Options{})
	timer.Start()

	previous := timer.Snapshot().Remaining
	for i := 0; i < ticksIn(model.FocusDuration)-1; i++ {
		timer.Tick()
		current := timer.Snapshot().Remaining
		require.Less(t, current, previous)
		previous = current
	}

	// The final tick crosses the boundary and resets to the successor's
	// full duration.
	timer.Tick()
	snapshot := timer.Snapshot()
	assert.Equal(t, model.KindShortBreak, snapshot.Kind)
	assert.Equal(t, model.ShortBreakDuration, snapshot.Remaining)
}

func TestFocusCompletionEntersShortBreak(t *testing.T) {
	timer := New(Options{})
	timer.Start()

	tickN(timer, ticksIn(model.FocusDuration))

	snapshot := timer.Snapshot()
	assert.Equal(t, model.KindShortBreak, snapshot.Kind)
	assert.Equal(t, model.ShortBreakDuration, snapshot.Remaining)
	assert.Equal(t, 1, snapshot.FocusCount)
	assert.True(t, snapshot.Running, "timer continues automatically at boundaries")
}

func TestFourthFocusEarnsLongBreak(t *testing.T) {
	timer := New(Options{})
	timer.Start()

	for round := 0; round < 3; round++ {
		tickN(timer, ticksIn(model.FocusDuration))
		tickN(timer, ticksIn(model.ShortBreakDuration))
	}
	require.Equal(t, 3, timer.Snapshot().FocusCount)
	require.Equal(t, model.KindFocus, timer.Snapshot().Kind)

	tickN(timer, ticksIn(model.FocusDuration))

	snapshot := timer.Snapshot()
	assert.Equal(t, model.KindLongBreak, snapshot.Kind)
	assert.Equal(t, model.LongBreakDuration, snapshot.Remaining)
	assert.Equal(t, model.FocusPerCycle, snapshot.FocusCount, "all indicators stay filled during the long break")
}

func TestLongBreakCompletionResetsCycle(t *testing.T) {
	timer := New(Options{})
	timer.Start()

	for round := 0; round < 3; round++ {
		tickN(timer, ticksIn(model.FocusDuration))
		tickN(timer, ticksIn(model.ShortBreakDuration))
	}
	tickN(timer, ticksIn(model.FocusDuration))
	require.Equal(t, model.KindLongBreak, timer.Snapshot().Kind)

	tickN(timer, ticksIn(model.LongBreakDuration))

	snapshot := timer.Snapshot()
	assert.Equal(t, model.KindFocus, snapshot.Kind)
	assert.Equal(t, model.FocusDuration, snapshot.Remaining)
	assert.Equal(t, 0, snapshot.FocusCount)
	assert.True(t, snapshot.Running)
}

func TestCycleIsPeriodicOverFourFocusSessions(t *testing.T) {
	timer := New(Options{})
	timer.Start()

	for round := 0; round < 4; round++ {
		tickN(timer, ticksIn(model.FocusDuration))
		breakKind := timer.Snapshot().Kind
		tickN(timer, ticksIn(model.Duration(breakKind)))
	}

	snapshot := timer.Snapshot()
	assert.Equal(t, model.KindFocus, snapshot.Kind)
	assert.Equal(t, 0, snapshot.FocusCount)
}

func TestResetSkipFromMidShortBreak(t *testing.T) {
	timer := New(Options{})
	timer.Start()
	tickN(timer, ticksIn(model.FocusDuration))
	tickN(timer, 150)
	require.Equal(t, model.KindShortBreak, timer.Snapshot().Kind)
	require.Equal(t, 150*time.Second, timer.Snapshot().Remaining)

	timer.ResetSkip()

	snapshot := timer.Snapshot()
	assert.Equal(t, model.KindFocus, snapshot.Kind)
	assert.Equal(t, model.FocusDuration, snapshot.Remaining)
	assert.False(t, snapshot.Running)
	assert.Equal(t, 1, snapshot.FocusCount, "an abort never credits or discards completed sessions")
}

func TestResetSkipNeverMutatesFocusCount(t *testing.T) {
	timer := New(Options{})
	timer.Start()
	for round := 0; round < 3; round++ {
		tickN(timer, ticksIn(model.FocusDuration))
		tickN(timer, ticksIn(model.ShortBreakDuration))
	}
	tickN(timer, ticksIn(model.FocusDuration))
	require.Equal(t, model.FocusPerCycle, timer.Snapshot().FocusCount)

	timer.ResetSkip()

	assert.Equal(t, model.FocusPerCycle, timer.Snapshot().FocusCount)
	assert.Equal(t, model.KindFocus, timer.Snapshot().Kind)
}

func TestResetRestoresCurrentIntervalDuration(t *testing.T) {
	timer := New(Options{})
	timer.Start()
	tickN(timer, ticksIn(model.FocusDuration))
	tickN(timer, 42)
	require.Equal(t, model.KindShortBreak, timer.Snapshot().Kind)

	timer.Reset()

	snapshot := timer.Snapshot()
	assert.Equal(t, model.KindShortBreak, snapshot.Kind, "reset keeps the current interval")
	assert.Equal(t, model.ShortBreakDuration, snapshot.Remaining)
	assert.Equal(t, 1, snapshot.FocusCount)
	assert.False(t, snapshot.Running)
}

func TestCompletionEventFiresOncePerBoundary(t *testing.T) {
	timer := New(Options{})
	events := timer.Subscribe(2 * ticksIn(model.FocusDuration))
	timer.Start()

	tickN(timer, ticksIn(model.FocusDuration))

	completions := 0
	var finished model.IntervalKind
	for len(events) > 0 {
		event := <-events
		if event.Type == EventIntervalComplete {
			completions++
			finished = event.Finished
			assert.Equal(t, model.KindShortBreak, event.Snapshot.Kind)
		}
	}
	assert.Equal(t, 1, completions)
	assert.Equal(t, model.KindFocus, finished)
}

func TestRedundantCommandsEmitNothing(t *testing.T) {
	timer := New(Options{})
	events := timer.Subscribe(8)

	timer.Start()
	require.Len(t, events, 1)
	timer.Start()
	assert.Len(t, events, 1, "start while running is a no-op")

	timer.Pause()
	require.Len(t, events, 2)
	timer.Pause()
	assert.Len(t, events, 2, "pause while paused is a no-op")
}

func TestSlowObserverNeverBlocksTicking(t *testing.T) {
	timer := New(Options{})
	timer.Subscribe(1) // never drained
	timer.Start()

	done := make(chan struct{})
	go func() {
		tickN(timer, ticksIn(model.FocusDuration))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ticking blocked on a full observer channel")
	}
	assert.Equal(t, model.KindShortBreak, timer.Snapshot().Kind)
}

func TestCloseStopsLoopAndClosesObservers(t *testing.T) {
	timer := New(Options{TickInterval: time.Millisecond})
	events := timer.Subscribe(4)
	timer.Run()
	timer.Close()
	timer.Close() // idempotent

	for {
		if _, open := <-events; !open {
			return
		}
	}
}
