package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func drain(streamer beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestExplosionLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	total, peak := drain(NewExplosion(rate))

	assert.Equal(t, rate.N(400*time.Millisecond), total)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.0)
}

func TestChimeLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	total, peak := drain(NewChime(rate))

	want := 2*rate.N(90*time.Millisecond) + rate.N(180*time.Millisecond)
	assert.Equal(t, want, total)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()

	assert.NotPanics(t, func() {
		sm.PlayExplosion()
		sm.PlaySuccess()
		sm.Cleanup()
	})
}
