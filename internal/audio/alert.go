package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

// Alert tone parameters. The tone is generated, no sound asset is shipped.
const (
	ToneFrequency = 1000
	ToneDuration  = 500 * time.Millisecond
)

const sampleRate = beep.SampleRate(44100)

// Player produces the interval-completion tone. Playback is
// fire-and-forget: a missing or failing audio device degrades to
// silence and never reaches the timer.
type Player struct {
	mu      sync.Mutex
	ready   bool
	enabled bool
	volume  float64
}

// NewPlayer initializes the speaker. On failure the player stays silent.
func NewPlayer() *Player {
	player := &Player{enabled: true, volume: 1}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio: speaker init: %v", err)
		return player
	}
	player.ready = true
	return player
}

// SetEnabled toggles the alert sound.
func (player *Player) SetEnabled(enabled bool) {
	player.mu.Lock()
	player.enabled = enabled
	player.mu.Unlock()
}

// SetVolume sets the alert volume from a [0,1] slider value.
func (player *Player) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	player.mu.Lock()
	player.volume = volume
	player.mu.Unlock()
}

// PlayAlert queues the completion tone. Never blocks the caller.
func (player *Player) PlayAlert() {
	player.mu.Lock()
	ready := player.ready
	enabled := player.enabled
	volume := player.volume
	player.mu.Unlock()

	if !ready || !enabled || volume == 0 {
		return
	}

	tone, err := alertTone(sampleRate)
	if err != nil {
		log.Printf("audio: alert tone: %v", err)
		return
	}

	speaker.Play(&effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   gain(volume),
	})
}

// alertTone builds the fixed 1000 Hz, 500 ms sine streamer.
func alertTone(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SinTone(sr, ToneFrequency)
	if err != nil {
		return nil, fmt.Errorf("generate sine tone: %w", err)
	}
	return beep.Take(sr.N(ToneDuration), sine), nil
}

// gain maps the [0,1] slider value onto a base-2 volume exponent,
// with 1 meaning unity gain.
func gain(volume float64) float64 {
	return (volume - 1) * 4
}
