package particle

import (
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/penny-rain/internal/config"
)

// Params are the tuning numbers for all three layers.
type Params = config.Particles

// State owns the three particle populations and everything the frame
// driver needs to advance them. It is not safe for concurrent use; the
// game loop is its only caller.
type State struct {
	params Params
	rng    *rand.Rand

	width, height float64

	ambient []Particle
	bursts  []Particle
	trail   []Particle

	lastTrail time.Time
}

// NewState creates the ambient layer, scattered over the whole viewport.
func NewState(p Params, width, height float64, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(p.Seed))
	}
	s := &State{
		params:  p,
		rng:     rng,
		width:   width,
		height:  height,
		ambient: make([]Particle, p.AmbientCount),
	}
	for i := range s.ambient {
		a := &s.ambient[i]
		s.resetAmbient(a)
		a.Y = rng.Float64() * height
	}
	return s
}

// uniform samples [lo, hi)
func (s *State) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// symmetric samples [-half, half)
func (s *State) symmetric(half float64) float64 {
	return (s.rng.Float64() - 0.5) * 2 * half
}

func (s *State) resetAmbient(p *Particle) {
	prm := &s.params
	*p = Particle{
		Kind:          Ambient,
		X:             s.rng.Float64() * s.width,
		Y:             prm.AmbientResetY,
		Size:          s.uniform(prm.AmbientMinSize, prm.AmbientMaxSize),
		SpeedY:        s.uniform(prm.AmbientMinSpeed, prm.AmbientMaxSpeed),
		SpeedX:        s.symmetric(prm.AmbientDrift),
		Rotation:      s.rng.Float64() * 2 * math.Pi,
		RotationSpeed: s.symmetric(prm.AmbientSpin),
		Opacity:       s.uniform(prm.AmbientMinOpacity, prm.AmbientMaxOpacity),
		Wobble:        s.rng.Float64() * 2 * math.Pi,
		WobbleSpeed:   s.uniform(prm.AmbientMinWobbleInc, prm.AmbientMaxWobbleInc),
	}
}

// Resize updates the bounds used for wrapping, recycling and spawning.
func (s *State) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// Burst throws a batch of pennies out from (px, py) and returns how many.
func (s *State) Burst(px, py float64) int {
	prm := &s.params
	for i := 0; i < prm.BurstCount; i++ {
		s.bursts = append(s.bursts, Particle{
			Kind:          Burst,
			X:             px,
			Y:             py,
			Size:          s.uniform(prm.BurstMinSize, prm.BurstMaxSize),
			SpeedX:        s.symmetric(prm.BurstSpread),
			SpeedY:        s.symmetric(prm.BurstSpread) - prm.BurstLift,
			Rotation:      s.rng.Float64() * 2 * math.Pi,
			RotationSpeed: s.symmetric(prm.BurstSpin),
			Opacity:       1,
			Gravity:       prm.BurstGravity,
			MaxLife:       prm.BurstMaxLife,
		})
	}
	return prm.BurstCount
}

// Move records a pointer position. A trail dot is left only when more than
// TrailInterval has passed since the previous one.
func (s *State) Move(px, py float64, now time.Time) bool {
	prm := &s.params
	if !s.lastTrail.IsZero() && now.Sub(s.lastTrail) <= prm.TrailInterval {
		return false
	}
	s.trail = append(s.trail, Particle{
		Kind:    Trail,
		X:       px,
		Y:       py,
		Size:    s.uniform(prm.TrailMinSize, prm.TrailMaxSize),
		SpeedX:  s.symmetric(prm.TrailSpread),
		SpeedY:  s.symmetric(prm.TrailSpread),
		Opacity: 1,
		MaxLife: prm.TrailMaxLife,
	})
	s.lastTrail = now
	return true
}

// Step advances every layer by one frame. Expired transient particles are
// dropped before the survivors move: a particle reaching MaxLife is still
// held (at zero alpha, so never drawn) until the following step.
func (s *State) Step() {
	s.trail = s.stepTransient(s.trail)
	for i := range s.ambient {
		s.ambient[i].update(s)
	}
	s.bursts = s.stepTransient(s.bursts)
}

func (s *State) stepTransient(ps []Particle) []Particle {
	live := ps[:0]
	for _, p := range ps {
		if p.Expired() {
			continue
		}
		p.update(s)
		live = append(live, p)
	}
	return live
}

// Draw clears the canvas and paints trail, ambient and burst layers in that order.
func (s *State) Draw(c Canvas) {
	c.Clear()
	for i := range s.trail {
		s.trail[i].draw(c, &s.params)
	}
	for i := range s.ambient {
		s.ambient[i].draw(c, &s.params)
	}
	for i := range s.bursts {
		s.bursts[i].draw(c, &s.params)
	}
}

func (s *State) AmbientCount() int { return len(s.ambient) }
func (s *State) BurstCount() int   { return len(s.bursts) }
func (s *State) TrailCount() int   { return len(s.trail) }

// Ambient returns a copy of the ambient layer.
func (s *State) Ambient() []Particle { return append([]Particle(nil), s.ambient...) }

// Bursts returns a copy of the live burst particles.
func (s *State) Bursts() []Particle { return append([]Particle(nil), s.bursts...) }

// Trail returns a copy of the live trail particles.
func (s *State) Trail() []Particle { return append([]Particle(nil), s.trail...) }
