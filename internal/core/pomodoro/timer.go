package pomodoro

import (
	"sync"
	"time"

	"pomobell/internal/core/model"
)

// Options contains runtime options for Timer.
type Options struct {
	TickInterval time.Duration
}

// Timer is the state machine governing interval progression and cycle
// bookkeeping. All state mutation is serialized under one mutex; the
// ticking loop and user commands may arrive from different goroutines.
type Timer struct {
	mu         sync.Mutex
	options    Options
	kind       model.IntervalKind
	remaining  time.Duration
	focusCount int
	running    bool
	events     []chan Event
	stopCh     chan struct{}
	looping    bool
}

// New creates a Timer in its initial state: a fresh, stopped Focus interval.
func New(options Options) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Timer{
		options:   options,
		kind:      model.KindFocus,
		remaining: model.FocusDuration,
		stopCh:    make(chan struct{}),
	}
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// Run launches the ticking loop. The loop is the only production caller
// of Tick; it keeps firing while the timer is paused so that resuming
// needs no rescheduling.
func (timer *Timer) Run() {
	timer.mu.Lock()
	if timer.looping {
		timer.mu.Unlock()
		return
	}
	timer.looping = true
	timer.mu.Unlock()

	go timer.loop()
}

// Close terminates the ticking loop and closes observer channels.
func (timer *Timer) Close() {
	timer.mu.Lock()
	if !timer.looping {
		timer.mu.Unlock()
		return
	}
	close(timer.stopCh)
	timer.looping = false
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Start resumes the countdown. No-op when already running; the countdown
// position and interval kind are untouched.
func (timer *Timer) Start() {
	timer.mu.Lock()
	if timer.running {
		timer.mu.Unlock()
		return
	}
	timer.running = true
	snapshot := timer.snapshotLocked()
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: snapshot, At: time.Now()})
	timer.mu.Unlock()
}

// Pause freezes the countdown, preserving the position exactly.
// No-op when already paused.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	if !timer.running {
		timer.mu.Unlock()
		return
	}
	timer.running = false
	snapshot := timer.snapshotLocked()
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: snapshot, At: time.Now()})
	timer.mu.Unlock()
}

// ResetSkip unconditionally aborts the current interval and returns to a
// fresh, stopped Focus interval. An abort is not a completion: the focus
// count is never mutated here.
func (timer *Timer) ResetSkip() {
	timer.mu.Lock()
	timer.running = false
	timer.kind = model.KindFocus
	timer.remaining = model.FocusDuration
	snapshot := timer.snapshotLocked()
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: snapshot, At: time.Now()})
	timer.mu.Unlock()
}

// Reset stops the countdown and restores the current interval's full
// duration, leaving the kind and focus count unchanged.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	timer.running = false
	timer.remaining = model.Duration(timer.kind)
	snapshot := timer.snapshotLocked()
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: snapshot, At: time.Now()})
	timer.mu.Unlock()
}

// Tick advances the countdown by one step. No-op while paused. When the
// decrement reaches zero the interval transition runs within the same
// tick; the countdown never goes negative.
func (timer *Timer) Tick() {
	timer.mu.Lock()
	if !timer.running {
		timer.mu.Unlock()
		return
	}

	now := time.Now()
	if timer.remaining > 0 {
		timer.remaining -= time.Second
		if timer.remaining > 0 {
			timer.emitLocked(Event{Type: EventTick, Snapshot: timer.snapshotLocked(), At: now})
			timer.mu.Unlock()
			return
		}
	}

	// Boundary reached: transition and report the completion.
	finished := timer.kind
	timer.advanceLocked()
	snapshot := timer.snapshotLocked()
	timer.emitLocked(Event{Type: EventIntervalComplete, Snapshot: snapshot, Finished: finished, At: now})
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: snapshot, At: now})
	timer.mu.Unlock()
}

// Snapshot returns the current read model.
func (timer *Timer) Snapshot() model.Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.snapshotLocked()
}

func (timer *Timer) loop() {
	ticker := time.NewTicker(timer.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timer.stopCh:
			return
		case <-ticker.C:
			timer.Tick()
		}
	}
}

// advanceLocked is the successor function: on Focus completion the count
// increments and the fourth focus earns the long break; breaks always
// return to Focus, a finished long break resetting the count.
func (timer *Timer) advanceLocked() {
	switch timer.kind {
	case model.KindFocus:
		timer.focusCount++
		if timer.focusCount >= model.FocusPerCycle {
			timer.focusCount = model.FocusPerCycle
			timer.kind = model.KindLongBreak
		} else {
			timer.kind = model.KindShortBreak
		}
	case model.KindLongBreak:
		timer.focusCount = 0
		timer.kind = model.KindFocus
	default:
		timer.kind = model.KindFocus
	}
	timer.remaining = model.Duration(timer.kind)
	// Automatic continuation: the timer does not stop itself at interval
	// boundaries. A pause before the boundary prevents reaching it at all.
}

func (timer *Timer) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Kind:       timer.kind,
		Remaining:  timer.remaining,
		FocusCount: timer.focusCount,
		Running:    timer.running,
	}
}

func (timer *Timer) emitLocked(event Event) {
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
