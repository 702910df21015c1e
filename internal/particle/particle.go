package particle

import (
	"image/color"
	"math"
)

// Kind tags which layer a particle belongs to.
type Kind uint8

const (
	Ambient Kind = iota // falls forever, recycled in place
	Burst               // thrown out by a click, fades over MaxLife
	Trail               // left behind the cursor, fades over MaxLife
)

func (k Kind) String() string {
	switch k {
	case Ambient:
		return "ambient"
	case Burst:
		return "burst"
	case Trail:
		return "trail"
	default:
		return "unknown"
	}
}

type Particle struct {
	Kind Kind

	X, Y   float64
	Size   float64
	SpeedX float64
	SpeedY float64

	Rotation      float64
	RotationSpeed float64
	Opacity       float64

	// Ambient only
	Wobble      float64
	WobbleSpeed float64

	// Burst only
	Gravity float64

	// Burst and Trail
	Life    int
	MaxLife int
}

// Canvas is the drawing surface particles render onto.
type Canvas interface {
	Clear()
	// SpriteReady reports whether the shared penny image has finished loading.
	SpriteReady() bool
	// DrawSprite draws the penny centered at (x, y), scaled to size and rotated.
	DrawSprite(x, y, size, rotation, alpha float64)
	FillCircle(x, y, radius float64, c color.Color, alpha float64)
}

// Expired reports whether a transient particle has used up its life.
// Ambient particles never expire.
func (p *Particle) Expired() bool {
	if p.Kind == Ambient {
		return false
	}
	return p.Life >= p.MaxLife
}

// fade is the remaining life fraction, 1 at spawn and 0 at expiry.
func (p *Particle) fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return 1 - float64(p.Life)/float64(p.MaxLife)
}

// Alpha is the opacity the particle is drawn with this frame.
func (p *Particle) Alpha(prm *Params) float64 {
	switch p.Kind {
	case Trail:
		return p.fade() * prm.TrailAlpha
	default:
		return p.Opacity
	}
}

func (p *Particle) update(s *State) {
	switch p.Kind {
	case Ambient:
		p.updateAmbient(s)
	case Burst:
		p.updateBurst()
	case Trail:
		p.updateTrail(s.params.TrailDamping)
	}
}

func (p *Particle) updateAmbient(s *State) {
	prm := &s.params
	p.Y += p.SpeedY
	p.X += p.SpeedX + math.Sin(p.Wobble)*prm.AmbientWobbleAmp
	p.Rotation += p.RotationSpeed
	p.Wobble += p.WobbleSpeed

	if p.Y > s.height+prm.AmbientMargin {
		s.resetAmbient(p)
	}

	// Wrap horizontally so drift never loses a penny
	if p.X < -prm.AmbientMargin {
		p.X = s.width + prm.AmbientMargin
	} else if p.X > s.width+prm.AmbientMargin {
		p.X = -prm.AmbientMargin
	}
}

func (p *Particle) updateBurst() {
	p.SpeedY += p.Gravity
	p.X += p.SpeedX
	p.Y += p.SpeedY
	p.Rotation += p.RotationSpeed
	p.Life++
	p.Opacity = p.fade()
}

func (p *Particle) updateTrail(damping float64) {
	p.X += p.SpeedX
	p.Y += p.SpeedY
	p.Life++
	p.SpeedX *= damping
	p.SpeedY *= damping
	p.Opacity = p.fade()
}

func (p *Particle) draw(c Canvas, prm *Params) {
	alpha := p.Alpha(prm)
	if alpha <= 0 {
		return
	}
	switch p.Kind {
	case Ambient, Burst:
		if !c.SpriteReady() {
			return
		}
		c.DrawSprite(p.X, p.Y, p.Size, p.Rotation, alpha)
	case Trail:
		c.FillCircle(p.X, p.Y, p.Size, prm.TrailColor, alpha)
	}
}
