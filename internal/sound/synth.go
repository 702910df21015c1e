package sound

import (
	"math"

	"github.com/faiface/beep"
)

// oscillator streams one Voice from its Start to its Stop.
type oscillator struct {
	voice    Voice
	rate     beep.SampleRate
	phase    float64
	position int
	duration int
}

func newOscillator(v Voice, rate beep.SampleRate) *oscillator {
	n := 0
	if v.Stop > v.Start {
		n = rate.N(v.Stop - v.Start)
	}
	return &oscillator{voice: v, rate: rate, duration: n}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}
		t := o.voice.Start + o.rate.D(o.position)
		val := math.Sin(2*math.Pi*o.phase) * o.voice.Gain.ValueAt(t)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.voice.Freq.ValueAt(t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Render turns a recipe into a finite stereo stream. Voices that start late
// are preceded by silence so every voice shares the same time origin.
func Render(r Recipe, rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(r))
	for _, v := range r {
		var s beep.Streamer = newOscillator(v, rate)
		if v.Start > 0 {
			s = beep.Seq(beep.Silence(rate.N(v.Start)), s)
		}
		voices = append(voices, s)
	}
	return beep.Mix(voices...)
}
