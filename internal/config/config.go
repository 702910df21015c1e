package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Penny Rain - click to burst, M: sound, O: sprite, F3: stats, Esc/Q: quit"

	// Ambient fall layer
	AmbientCount        = 20
	AmbientMargin       = 100.0
	AmbientResetY       = -80.0
	AmbientWobbleAmp    = 0.5
	AmbientMinSize      = 30.0
	AmbientMaxSize      = 70.0
	AmbientMinSpeed     = 0.8
	AmbientMaxSpeed     = 2.3
	AmbientDrift        = 0.4
	AmbientSpin         = 0.02
	AmbientMinOpacity   = 0.15
	AmbientMaxOpacity   = 0.4
	AmbientMinWobbleInc = 0.01
	AmbientMaxWobbleInc = 0.04

	// Burst layer
	BurstCount    = 8
	BurstMaxLife  = 60
	BurstGravity  = 0.6
	BurstMinSize  = 20.0
	BurstMaxSize  = 50.0
	BurstSpread   = 6.0
	BurstLift     = 6.0
	BurstSpin     = 0.2

	// Cursor trail layer
	TrailInterval = 50 * time.Millisecond
	TrailMaxLife  = 30
	TrailDamping  = 0.95
	TrailMinSize  = 2.0
	TrailMaxSize  = 6.0
	TrailSpread   = 1.0
	TrailAlpha    = 0.6

	// Sound
	SampleRate   = 44100
	MasterVolume = 1.0

	// Toast
	ToastHold   = 2 * time.Second
	ToastSlide  = 400.0
	ToastTop    = 100
	ToastRight  = 20
	TicksPerSec = 60
)

var (
	// TrailColor is the copper-gold used for cursor trail dots.
	TrailColor = color.RGBA{R: 0xF5, G: 0xA6, B: 0x23, A: 0xFF}
	// Background fills the window before every frame.
	Background = color.RGBA{R: 250, G: 248, B: 245, A: 255}
)

// Validation errors
var (
	ErrWindowSize = errors.New("window size must be positive")
	ErrCount      = errors.New("particle counts must not be negative")
	ErrMaxLife    = errors.New("particle max life must be positive")
	ErrDamping    = errors.New("trail damping must be in (0, 1]")
	ErrVolume     = errors.New("volume must be in [0, 1]")
	ErrSampleRate = errors.New("sample rate must be positive")
)

type Window struct {
	Width  int
	Height int
	Title  string
}

// Particles holds the tuning numbers for all three particle layers.
// Ranges are half-open [Min, Max); symmetric ranges are given by their
// half-width (Drift, Spin, Spread).
type Particles struct {
	AmbientCount        int
	AmbientMargin       float64
	AmbientResetY       float64
	AmbientWobbleAmp    float64
	AmbientMinSize      float64
	AmbientMaxSize      float64
	AmbientMinSpeed     float64
	AmbientMaxSpeed     float64
	AmbientDrift        float64
	AmbientSpin         float64
	AmbientMinOpacity   float64
	AmbientMaxOpacity   float64
	AmbientMinWobbleInc float64
	AmbientMaxWobbleInc float64

	BurstCount   int
	BurstMaxLife int
	BurstGravity float64
	BurstMinSize float64
	BurstMaxSize float64
	BurstSpread  float64
	BurstLift    float64
	BurstSpin    float64

	TrailInterval time.Duration
	TrailMaxLife  int
	TrailDamping  float64
	TrailMinSize  float64
	TrailMaxSize  float64
	TrailSpread   float64
	TrailAlpha    float64
	TrailColor    color.RGBA

	Seed int64
}

type Sound struct {
	Enabled    bool
	Volume     float64
	SampleRate int
}

type Sprite struct {
	// Path to a PNG or JPEG; empty selects the built-in coin.
	Path string
}

type Config struct {
	Window    Window
	Particles Particles
	Sound     Sound
	Sprite    Sprite
}

// Default returns the stock tuning.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Particles: Particles{
			AmbientCount:        AmbientCount,
			AmbientMargin:       AmbientMargin,
			AmbientResetY:       AmbientResetY,
			AmbientWobbleAmp:    AmbientWobbleAmp,
			AmbientMinSize:      AmbientMinSize,
			AmbientMaxSize:      AmbientMaxSize,
			AmbientMinSpeed:     AmbientMinSpeed,
			AmbientMaxSpeed:     AmbientMaxSpeed,
			AmbientDrift:        AmbientDrift,
			AmbientSpin:         AmbientSpin,
			AmbientMinOpacity:   AmbientMinOpacity,
			AmbientMaxOpacity:   AmbientMaxOpacity,
			AmbientMinWobbleInc: AmbientMinWobbleInc,
			AmbientMaxWobbleInc: AmbientMaxWobbleInc,

			BurstCount:   BurstCount,
			BurstMaxLife: BurstMaxLife,
			BurstGravity: BurstGravity,
			BurstMinSize: BurstMinSize,
			BurstMaxSize: BurstMaxSize,
			BurstSpread:  BurstSpread,
			BurstLift:    BurstLift,
			BurstSpin:    BurstSpin,

			TrailInterval: TrailInterval,
			TrailMaxLife:  TrailMaxLife,
			TrailDamping:  TrailDamping,
			TrailMinSize:  TrailMinSize,
			TrailMaxSize:  TrailMaxSize,
			TrailSpread:   TrailSpread,
			TrailAlpha:    TrailAlpha,
			TrailColor:    TrailColor,

			Seed: time.Now().UnixNano(),
		},
		Sound: Sound{
			Enabled:    true,
			Volume:     MasterVolume,
			SampleRate: SampleRate,
		},
	}
}

// LoadEnv applies PENNY_RAIN_* environment overrides. Unparseable values are ignored.
func LoadEnv(cfg *Config) {
	if v := os.Getenv("PENNY_RAIN_SOUND_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sound.Enabled = b
		}
	}

	// Volume is 0-100 in the environment
	if v := os.Getenv("PENNY_RAIN_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sound.Volume = math.Min(1, math.Max(0, float64(n)/100.0))
		}
	}

	if v := os.Getenv("PENNY_RAIN_AMBIENT_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Particles.AmbientCount = n
		}
	}

	if v, ok := os.LookupEnv("PENNY_RAIN_SPRITE"); ok {
		cfg.Sprite.Path = v
	}

	if v := os.Getenv("PENNY_RAIN_SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Sound.SampleRate = n
		}
	}
}

// BindFlags registers command-line flags that write into cfg.
// Call after LoadEnv so flags win over the environment.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Particles.AmbientCount, "pennies", cfg.Particles.AmbientCount, "number of falling pennies")
	fs.IntVar(&cfg.Particles.BurstCount, "burst", cfg.Particles.BurstCount, "pennies spawned per click")
	fs.StringVar(&cfg.Sprite.Path, "sprite", cfg.Sprite.Path, "penny image (png/jpeg); empty draws a built-in coin")
	fs.Float64Var(&cfg.Sound.Volume, "volume", cfg.Sound.Volume, "master volume 0..1")
	fs.IntVar(&cfg.Window.Width, "width", cfg.Window.Width, "initial window width")
	fs.IntVar(&cfg.Window.Height, "height", cfg.Window.Height, "initial window height")
	fs.Int64Var(&cfg.Particles.Seed, "seed", cfg.Particles.Seed, "random seed")
	fs.Var(muteFlag{enabled: &cfg.Sound.Enabled}, "mute", "start with sound effects disabled")
}

// muteFlag is a bool flag that writes the inverse into Sound.Enabled.
type muteFlag struct{ enabled *bool }

func (m muteFlag) String() string {
	if m.enabled == nil {
		return "false"
	}
	return strconv.FormatBool(!*m.enabled)
}

func (m muteFlag) IsBoolFlag() bool { return true }

func (m muteFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*m.enabled = !v
	return nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrWindowSize, c.Window.Width, c.Window.Height)
	}
	p := c.Particles
	if p.AmbientCount < 0 || p.BurstCount < 0 {
		return fmt.Errorf("%w: ambient=%d burst=%d", ErrCount, p.AmbientCount, p.BurstCount)
	}
	if p.BurstMaxLife <= 0 || p.TrailMaxLife <= 0 {
		return fmt.Errorf("%w: burst=%d trail=%d", ErrMaxLife, p.BurstMaxLife, p.TrailMaxLife)
	}
	if p.TrailDamping <= 0 || p.TrailDamping > 1 {
		return fmt.Errorf("%w: %v", ErrDamping, p.TrailDamping)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: %v", ErrVolume, c.Sound.Volume)
	}
	if c.Sound.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrSampleRate, c.Sound.SampleRate)
	}
	return nil
}
