package sound

import (
	"math"
	"time"
)

// Shape selects how a curve approaches a point from the point before it.
type Shape int

const (
	Step        Shape = iota // hold the previous value, jump at the point
	Linear                   // straight line from the previous point
	Exponential              // geometric ramp from the previous point
)

// Point is one automation event: the curve reaches Value at At.
type Point struct {
	At    time.Duration
	Value float64
	Shape Shape
}

// Curve is a time-ordered list of automation points, in the manner of an
// audio parameter timeline. The value before the first point is the first
// point's value; after the last point it holds the last value.
type Curve []Point

// Const is a curve that never changes.
func Const(v float64) Curve {
	return Curve{{Value: v}}
}

func (c Curve) ValueAt(t time.Duration) float64 {
	if len(c) == 0 {
		return 0
	}
	if t < c[0].At {
		return c[0].Value
	}
	for i := 1; i < len(c); i++ {
		prev, next := c[i-1], c[i]
		if t >= next.At {
			continue
		}
		span := next.At - prev.At
		if span <= 0 {
			return next.Value
		}
		frac := float64(t-prev.At) / float64(span)
		switch next.Shape {
		case Linear:
			return prev.Value + (next.Value-prev.Value)*frac
		case Exponential:
			// Undefined through zero or across a sign change; hold instead.
			if prev.Value == 0 || next.Value == 0 || (prev.Value > 0) != (next.Value > 0) {
				return prev.Value
			}
			return prev.Value * math.Pow(next.Value/prev.Value, frac)
		default:
			return prev.Value
		}
	}
	return c[len(c)-1].Value
}

// End is the time of the last point.
func (c Curve) End() time.Duration {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1].At
}
