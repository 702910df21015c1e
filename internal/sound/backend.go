package sound

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/gen2brain/beeep"

	"github.com/iburimskiy/penny-rain/internal/config"
)

// TapSize is how many recent output samples the speaker backend keeps.
const TapSize = 4096

var ErrNoAudio = errors.New("no audio output available")

// Backend plays a rendered cue. Play must not block for the cue's duration.
type Backend interface {
	Play(r Recipe) error
}

// SpeakerBackend mixes cues into a single long-running speaker stream.
type SpeakerBackend struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	tap    *Tap
}

// NewSpeakerBackend opens the default output device.
func NewSpeakerBackend(rate beep.SampleRate, volume float64) (*SpeakerBackend, error) {
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAudio, err)
	}
	b := &SpeakerBackend{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
	b.tap = NewTap(b.mixer, TapSize)
	speaker.Play(b.tap)
	return b, nil
}

func (b *SpeakerBackend) Play(r Recipe) error {
	s := newVolume(Render(r, b.rate), b.volume)
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Tap exposes the recent output for visualization.
func (b *SpeakerBackend) Tap() *Tap { return b.tap }

// Close silences anything still playing.
func (b *SpeakerBackend) Close() {
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
}

// newVolume scales a stream linearly; 0 mutes it since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// BeepBackend falls back to the system beeper. Only the first voice's
// starting pitch survives; envelopes are lost.
type BeepBackend struct {
	beep func(freq float64, durationMs int) error
}

func NewBeepBackend() *BeepBackend {
	return &BeepBackend{beep: beeep.Beep}
}

func (b *BeepBackend) Play(r Recipe) error {
	if len(r) == 0 {
		return nil
	}
	freq := r[0].Freq.ValueAt(r[0].Start)
	dur := int(r.Duration() / time.Millisecond)
	go func() {
		if err := b.beep(freq, dur); err != nil {
			log.Printf("beeper: %v", err)
		}
	}()
	return nil
}

// OpenBackend prefers the speaker and falls back to the system beeper.
func OpenBackend(cfg config.Sound) Backend {
	sb, err := NewSpeakerBackend(beep.SampleRate(cfg.SampleRate), cfg.Volume)
	if err == nil {
		log.Printf("audio: speaker at %d Hz", cfg.SampleRate)
		return sb
	}
	log.Printf("audio: %v, falling back to system beeper", err)
	return NewBeepBackend()
}
