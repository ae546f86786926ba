// Package sound plays short cues when a game ends.
package sound

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "initializing speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.WithField("rate", int(sampleRate)).Debug("audio initialized")
	return nil
}

func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) play(streamer beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayExplosion plays a burst of decaying noise
func (sm *SoundManager) PlayExplosion() {
	sm.play(NewExplosion(sampleRate))
}

// PlaySuccess plays a short rising three-note chime
func (sm *SoundManager) PlaySuccess() {
	sm.play(NewChime(sampleRate))
}

// NewExplosion is 400ms of noise under an exponential decay
func NewExplosion(rate beep.SampleRate) beep.Streamer {
	return &noiseBurst{
		samples: rate.N(400 * time.Millisecond),
		rand:    rand.New(rand.NewSource(1)),
	}
}

// NewChime is three sine notes played one after another
func NewChime(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newTone(rate, 523.25, 90*time.Millisecond),
		newTone(rate, 659.25, 90*time.Millisecond),
		newTone(rate, 783.99, 180*time.Millisecond),
	)
}

type noiseBurst struct {
	pos, samples int
	rand         *rand.Rand
}

func (burst *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if burst.pos >= burst.samples {
			return i, i > 0
		}

		envelope := math.Exp(-5 * float64(burst.pos) / float64(burst.samples))
		val := 0.4 * envelope * (burst.rand.Float64()*2 - 1)
		samples[i][0] = val
		samples[i][1] = val
		burst.pos++
	}
	return len(samples), true
}

func (burst *noiseBurst) Err() error { return nil }

type tone struct {
	freq         float64
	rate         beep.SampleRate
	pos, samples int
}

func newTone(rate beep.SampleRate, freq float64, duration time.Duration) beep.Streamer {
	return &tone{
		freq:    freq,
		rate:    rate,
		samples: rate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.samples {
			return i, i > 0
		}

		// Linear fade out to the end of the note
		fade := 1 - float64(t.pos)/float64(t.samples)
		val := 0.25 * fade * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate))
		samples[i][0] = val
		samples[i][1] = val
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
