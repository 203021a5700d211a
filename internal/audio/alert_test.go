package audio

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertToneLengthAndRange(t *testing.T) {
	const sr = beep.SampleRate(44100)
	tone, err := alertTone(sr)
	require.NoError(t, err)

	samples := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := tone.Stream(samples)
		total += n
		for _, sample := range samples[:n] {
			for _, channel := range sample {
				require.GreaterOrEqual(t, channel, -1.0)
				require.LessOrEqual(t, channel, 1.0)
				if channel > peak {
					peak = channel
				}
			}
		}
		if !ok {
			break
		}
	}

	assert.Equal(t, sr.N(ToneDuration), total, "tone is exactly 500 ms of samples")
	assert.Greater(t, peak, 0.5, "tone is audible, not silence")
}

func TestGainMapping(t *testing.T) {
	assert.Equal(t, 0.0, gain(1), "full slider is unity gain")
	assert.Less(t, gain(0.5), 0.0)
	assert.Less(t, gain(0), gain(0.5))
}

func TestPlayerClampsVolume(t *testing.T) {
	player := &Player{enabled: true}
	player.SetVolume(2)
	assert.Equal(t, 1.0, player.volume)
	player.SetVolume(-1)
	assert.Equal(t, 0.0, player.volume)
}
