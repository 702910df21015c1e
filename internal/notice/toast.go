// Package notice animates short on-screen confirmation banners.
package notice

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	springFrequency = 15.0
	springDamping   = 1.0
	settled         = 0.5
)

// Toast is a single banner that slides in from the right edge, holds,
// then slides back out. It is advanced once per game tick.
type Toast struct {
	spring harmonica.Spring
	slide  float64
	hold   int

	text   string
	offset float64
	vel    float64
	target float64
	ticks  int
	active bool
}

// New creates an idle toast. slide is how far off-screen the banner rests.
func New(tps int, hold time.Duration, slide float64) *Toast {
	return &Toast{
		spring: harmonica.NewSpring(harmonica.FPS(tps), springFrequency, springDamping),
		slide:  slide,
		hold:   int(hold.Seconds() * float64(tps)),
		offset: slide,
		target: slide,
	}
}

// Show replaces the message and restarts the hold timer. A banner that is
// already on screen keeps its position instead of jumping back out.
func (t *Toast) Show(msg string) {
	t.text = msg
	t.ticks = 0
	t.target = 0
	if !t.active {
		t.offset = t.slide
		t.vel = 0
	}
	t.active = true
}

func (t *Toast) Update() {
	if !t.active {
		return
	}
	t.ticks++
	if t.ticks >= t.hold {
		t.target = t.slide
	}
	t.offset, t.vel = t.spring.Update(t.offset, t.vel, t.target)
	if t.target == t.slide && t.offset >= t.slide-settled {
		t.active = false
		t.offset = t.slide
		t.vel = 0
	}
}

func (t *Toast) Visible() bool { return t.active }
func (t *Toast) Text() string  { return t.text }

// Offset is how far right of its resting place the banner is drawn.
func (t *Toast) Offset() float64 { return t.offset }

// Alpha fades the banner with its distance from the resting place.
func (t *Toast) Alpha() float64 {
	if t.slide <= 0 {
		return 1
	}
	a := 1 - t.offset/t.slide
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
