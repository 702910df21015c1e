package particle

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/iburimskiy/penny-rain/internal/config"
)

type drawCall struct {
	kind  string
	x, y  float64
	size  float64
	alpha float64
}

// recordCanvas records draw calls instead of rendering them
type recordCanvas struct {
	ready  bool
	clears int
	calls  []drawCall
}

func (c *recordCanvas) Clear()            { c.clears++; c.calls = c.calls[:0] }
func (c *recordCanvas) SpriteReady() bool { return c.ready }

func (c *recordCanvas) DrawSprite(x, y, size, rotation, alpha float64) {
	c.calls = append(c.calls, drawCall{kind: "sprite", x: x, y: y, size: size, alpha: alpha})
}

func (c *recordCanvas) FillCircle(x, y, radius float64, col color.Color, alpha float64) {
	c.calls = append(c.calls, drawCall{kind: "circle", x: x, y: y, size: radius, alpha: alpha})
}

func newTestState(t *testing.T) *State {
	t.Helper()
	p := config.Default().Particles
	return NewState(p, 800, 600, rand.New(rand.NewSource(42)))
}

func TestNewStateAmbientCount(t *testing.T) {
	s := newTestState(t)
	if s.AmbientCount() != config.AmbientCount {
		t.Fatalf("Expected %d ambient particles, got %d", config.AmbientCount, s.AmbientCount())
	}
	for i, p := range s.Ambient() {
		if p.Kind != Ambient {
			t.Errorf("Particle %d kind = %v, want ambient", i, p.Kind)
		}
		if p.Y < 0 || p.Y >= 600 {
			t.Errorf("Particle %d initial y %f outside viewport", i, p.Y)
		}
	}
}

func TestAmbientCountConstant(t *testing.T) {
	s := newTestState(t)
	s.Burst(10, 10)
	for i := 0; i < 2000; i++ {
		s.Step()
		if s.AmbientCount() != config.AmbientCount {
			t.Fatalf("Frame %d: ambient count %d", i, s.AmbientCount())
		}
	}
}

func TestAmbientResetWhenPastBottom(t *testing.T) {
	s := newTestState(t)
	prm := config.Default().Particles

	a := &s.ambient[0]
	a.Y = 600 + prm.AmbientMargin - 0.1
	a.SpeedY = 1
	s.Step()

	got := s.ambient[0]
	if got.Y >= 0 {
		t.Errorf("Expected reset y < 0, got %f", got.Y)
	}
	if got.Size < prm.AmbientMinSize || got.Size >= prm.AmbientMaxSize {
		t.Errorf("Size %f out of range", got.Size)
	}
	if got.SpeedY < prm.AmbientMinSpeed || got.SpeedY >= prm.AmbientMaxSpeed {
		t.Errorf("SpeedY %f out of range", got.SpeedY)
	}
	if got.Opacity < prm.AmbientMinOpacity || got.Opacity >= prm.AmbientMaxOpacity {
		t.Errorf("Opacity %f out of range", got.Opacity)
	}
	if math.Abs(got.SpeedX) > prm.AmbientDrift {
		t.Errorf("SpeedX %f out of range", got.SpeedX)
	}
	if got.WobbleSpeed < prm.AmbientMinWobbleInc || got.WobbleSpeed >= prm.AmbientMaxWobbleInc {
		t.Errorf("WobbleSpeed %f out of range", got.WobbleSpeed)
	}
}

func TestAmbientHorizontalWrap(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{"left edge", -100.5, 900},
		{"right edge", 900.5, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t)
			a := &s.ambient[0]
			a.Y = 10
			a.X = tt.x
			a.SpeedX = 0
			a.Wobble = 0
			a.WobbleSpeed = 0
			a.SpeedY = 0.5
			s.Step()

			got := s.ambient[0]
			if got.X != tt.wantX {
				t.Errorf("x = %f, want %f", got.X, tt.wantX)
			}
			if got.SpeedX != 0 || got.SpeedY != 0.5 {
				t.Errorf("velocity changed: (%f, %f)", got.SpeedX, got.SpeedY)
			}
		})
	}
}

func TestBurstSpawnsAtPoint(t *testing.T) {
	s := newTestState(t)
	n := s.Burst(100, 200)
	if n != 8 || s.BurstCount() != 8 {
		t.Fatalf("Expected 8 burst particles, got n=%d count=%d", n, s.BurstCount())
	}
	for i, p := range s.Bursts() {
		if p.X != 100 || p.Y != 200 {
			t.Errorf("Particle %d at (%f, %f), want (100, 200)", i, p.X, p.Y)
		}
		if p.SpeedX < -6 || p.SpeedX >= 6 {
			t.Errorf("Particle %d speedX %f out of range", i, p.SpeedX)
		}
		if p.SpeedY < -12 || p.SpeedY >= 0 {
			t.Errorf("Particle %d speedY %f not biased upward", i, p.SpeedY)
		}
		if p.Opacity != 1 {
			t.Errorf("Particle %d starts at opacity %f", i, p.Opacity)
		}
	}
}

func TestBurstFadeAndExpiry(t *testing.T) {
	s := newTestState(t)
	s.Burst(50, 50)

	prev := 1.0
	for frame := 1; frame <= config.BurstMaxLife; frame++ {
		s.Step()
		if s.BurstCount() != 8 {
			t.Fatalf("Frame %d: expected 8 live bursts, got %d", frame, s.BurstCount())
		}
		for _, p := range s.Bursts() {
			if p.Opacity > prev {
				t.Fatalf("Frame %d: opacity increased %f -> %f", frame, prev, p.Opacity)
			}
			if p.Life == p.MaxLife && p.Opacity > 0 {
				t.Fatalf("Frame %d: opacity %f at end of life", frame, p.Opacity)
			}
			if p.Life < p.MaxLife && p.Opacity <= 0 {
				t.Fatalf("Frame %d: opacity reached 0 early", frame)
			}
		}
		prev = s.Bursts()[0].Opacity
	}

	s.Step()
	if s.BurstCount() != 0 {
		t.Errorf("Expected expired bursts removed, got %d", s.BurstCount())
	}
}

func TestBurstGravity(t *testing.T) {
	s := newTestState(t)
	s.Burst(0, 0)
	before := s.Bursts()[0].SpeedY
	s.Step()
	after := s.Bursts()[0].SpeedY
	if math.Abs(after-before-config.BurstGravity) > 1e-9 {
		t.Errorf("SpeedY changed by %f, want %f", after-before, config.BurstGravity)
	}
}

func TestTrailRateLimit(t *testing.T) {
	s := newTestState(t)
	start := time.Unix(1000, 0)

	// 200ms of movement at 10ms intervals
	spawned := 0
	for i := 0; i <= 20; i++ {
		if s.Move(float64(i), 0, start.Add(time.Duration(i)*10*time.Millisecond)) {
			spawned++
		}
	}
	// windows strictly longer than 50ms: t=0, 60, 120, 180
	if spawned != 4 {
		t.Errorf("Expected 4 trail particles, got %d", spawned)
	}
	if s.TrailCount() != spawned {
		t.Errorf("TrailCount %d != spawned %d", s.TrailCount(), spawned)
	}
}

func TestTrailDampingAndExpiry(t *testing.T) {
	s := newTestState(t)
	s.Move(10, 10, time.Unix(0, 1))
	p0 := s.Trail()[0]

	s.Step()
	p1 := s.Trail()[0]
	if math.Abs(p1.SpeedX-p0.SpeedX*config.TrailDamping) > 1e-12 {
		t.Errorf("SpeedX %f, want %f", p1.SpeedX, p0.SpeedX*config.TrailDamping)
	}
	if p1.X != p0.X+p0.SpeedX {
		t.Errorf("X %f, want %f", p1.X, p0.X+p0.SpeedX)
	}

	for i := 1; i < config.TrailMaxLife; i++ {
		s.Step()
	}
	if s.TrailCount() != 1 {
		t.Fatalf("Expected trail still present at max life, got %d", s.TrailCount())
	}
	s.Step()
	if s.TrailCount() != 0 {
		t.Errorf("Expected trail removed after max life, got %d", s.TrailCount())
	}
}

func TestDrawSkipsSpritesUntilReady(t *testing.T) {
	s := newTestState(t)
	s.Burst(100, 100)
	s.Move(5, 5, time.Unix(0, 1))

	c := &recordCanvas{}
	s.Draw(c)
	if c.clears != 1 {
		t.Errorf("Expected one clear, got %d", c.clears)
	}
	for _, call := range c.calls {
		if call.kind == "sprite" {
			t.Fatal("Sprite drawn before image was ready")
		}
	}
	if len(c.calls) != 1 {
		t.Errorf("Expected only the trail circle, got %d calls", len(c.calls))
	}

	c.ready = true
	s.Draw(c)
	want := 1 + config.AmbientCount + config.BurstCount
	if len(c.calls) != want {
		t.Errorf("Expected %d draw calls, got %d", want, len(c.calls))
	}
}

func TestDrawOrder(t *testing.T) {
	s := newTestState(t)
	s.Burst(100, 100)
	s.Move(5, 5, time.Unix(0, 1))

	c := &recordCanvas{ready: true}
	s.Draw(c)

	// trail first, burst last
	if c.calls[0].kind != "circle" {
		t.Errorf("First call %q, want circle", c.calls[0].kind)
	}
	last := c.calls[len(c.calls)-1]
	if last.x != 100 || last.y != 100 || last.alpha != 1 {
		t.Errorf("Last call %+v, want burst at (100,100)", last)
	}
}

func TestTrailAlpha(t *testing.T) {
	p := Particle{Kind: Trail, Life: 15, MaxLife: 30}
	prm := config.Default().Particles
	if got := p.Alpha(&prm); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("Alpha = %f, want 0.3", got)
	}
}

func TestExpiredParticlesNotDrawn(t *testing.T) {
	s := newTestState(t)
	s.Burst(1, 1)
	for i := 0; i < config.BurstMaxLife; i++ {
		s.Step()
	}
	c := &recordCanvas{ready: true}
	s.Draw(c)
	if len(c.calls) != config.AmbientCount {
		t.Errorf("Zero-alpha bursts drawn: %d calls", len(c.calls))
	}
}
