// Package audio synthesizes the runner's sound effects with beep.
// Sounds are generated on the fly; there are no sample files.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/reef-runner/internal/runner"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// jumpPitch gives each character its own jump chirp.
var jumpPitch = map[string]float64{
	"sponge":   660,
	"starfish": 520,
	"squid":    780,
}

// SoundManager plays sound effects through the system speaker.
// Every method is safe to call before Initialize or after it failed;
// the calls are then silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

var _ runner.Sounds = (*SoundManager)(nil)

// NewSoundManager creates a sound manager. Call Initialize to open the
// audio device.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
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

// Jump plays a short upward chirp pitched per character.
func (sm *SoundManager) Jump(character string) {
	sm.play(jumpSound(character))
}

// Collision plays a thud, heavier for the bigger obstacles.
func (sm *SoundManager) Collision(kind runner.ObstacleKind) {
	sm.play(collisionSound(kind))
}

// GameOver plays a falling two-note phrase.
func (sm *SoundManager) GameOver() {
	sm.play(gameOverSound())
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func jumpSound(character string) beep.Streamer {
	base, ok := jumpPitch[character]
	if !ok {
		base = 600
	}
	return beep.Take(sampleRate.N(time.Millisecond*120), NewSweepGenerator(sampleRate, base, base*1.6, 0.25, 20))
}

func collisionSound(kind runner.ObstacleKind) beep.Streamer {
	freq := 140.0
	switch kind {
	case runner.Jellyfish:
		freq = 220 // Squishy
	case runner.Anchor:
		freq = 70
	case runner.Coral:
		freq = 110
	case runner.KrabbyPatty:
		freq = 180
	}
	return beep.Take(sampleRate.N(time.Millisecond*250), NewSweepGenerator(sampleRate, freq, freq*0.5, 0.35, 12))
}

func gameOverSound() beep.Streamer {
	return beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*200), NewSweepGenerator(sampleRate, 392, 370, 0.2, 6)),
		beep.Take(sampleRate.N(time.Millisecond*400), NewSweepGenerator(sampleRate, 262, 196, 0.2, 4)),
	)
}

// SweepGenerator produces a sine tone that glides between two frequencies
// under an exponential decay envelope.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	volume   float64
	decay    float64 // Envelope falloff per second
	phase    float64
	pos      int
	length   int
}

// NewSweepGenerator creates a sweep from one frequency to another over
// half a second.
func NewSweepGenerator(sr beep.SampleRate, from, to, volume, decay float64) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		volume: volume,
		decay:  decay,
		length: sr.N(time.Millisecond * 500),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		// Accumulate phase so the glide has no clicks.
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := g.volume * math.Exp(-t*g.decay) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
