package sound

import "time"

// Voice is a single sine oscillator with its own frequency and gain timeline.
// Times are measured from the moment the cue is triggered.
type Voice struct {
	Start time.Duration
	Stop  time.Duration
	Freq  Curve
	Gain  Curve
}

// Recipe is the set of voices that sound together for one cue.
type Recipe []Voice

// Duration is when the last voice stops.
func (r Recipe) Duration() time.Duration {
	var d time.Duration
	for _, v := range r {
		if v.Stop > d {
			d = v.Stop
		}
	}
	return d
}

const ms = time.Millisecond

// decay is a gain curve that starts at peak and falls exponentially to 0.01.
func decay(peak float64, over time.Duration) Curve {
	return Curve{
		{At: 0, Value: peak},
		{At: over, Value: 0.01, Shape: Exponential},
	}
}

// glide is a frequency curve that slides exponentially from one pitch to another.
func glide(from, to float64, over time.Duration) Curve {
	return Curve{
		{At: 0, Value: from},
		{At: over, Value: to, Shape: Exponential},
	}
}

// Recipes returns the cue table.
func Recipes() map[Kind]Recipe {
	return map[Kind]Recipe{
		Click: {{
			Stop: 100 * ms,
			Freq: Const(800),
			Gain: decay(0.1, 100*ms),
		}},
		Copy: {{
			Stop: 150 * ms,
			Freq: Const(1200),
			Gain: decay(0.15, 150*ms),
		}},
		Success: {{
			Stop: 300 * ms,
			Freq: glide(600, 900, 200*ms),
			Gain: decay(0.2, 300*ms),
		}},
		Whoosh: {{
			Stop: 200 * ms,
			Freq: glide(400, 200, 200*ms),
			Gain: decay(0.1, 200*ms),
		}},
		// "cha" then a bell-like "ching" that swells in on top of it
		Coin: {
			{
				Stop: 100 * ms,
				Freq: glide(1200, 800, 50*ms),
				Gain: decay(0.15, 100*ms),
			},
			{
				Start: 50 * ms,
				Stop:  500 * ms,
				Freq:  Const(1800),
				Gain: Curve{
					{At: 50 * ms, Value: 0},
					{At: 80 * ms, Value: 0.2, Shape: Linear},
					{At: 500 * ms, Value: 0.01, Shape: Exponential},
				},
			},
		},
	}
}
