package game

import (
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/penny-rain/internal/asset"
	"github.com/iburimskiy/penny-rain/internal/config"
	"github.com/iburimskiy/penny-rain/internal/notice"
	"github.com/iburimskiy/penny-rain/internal/particle"
	"github.com/iburimskiy/penny-rain/internal/sound"
)

// previewKeys play each cue in sound.Kinds() order.
var previewKeys = []ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
}

type Game struct {
	cfg   *config.Config
	sim   *particle.State
	sound *sound.Generator
	toast *notice.Toast

	// sprite
	canvas  screenCanvas
	loading <-chan asset.Result

	// viewport
	width, height int

	// pointer
	cursorX, cursorY int
	cursorIn         bool
	touches          []ebiten.TouchID

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	showHUD bool
	ticks   int
	started time.Time
}

func NewGame(cfg *config.Config, gen *sound.Generator) *Game {
	w, h := cfg.Window.Width, cfg.Window.Height
	g := &Game{
		cfg:     cfg,
		sim:     particle.NewState(cfg.Particles, float64(w), float64(h), rand.New(rand.NewSource(cfg.Particles.Seed))),
		sound:   gen,
		toast:   notice.New(config.TicksPerSec, config.ToastHold, config.ToastSlide),
		canvas:  screenCanvas{bg: config.Background},
		width:   w,
		height:  h,
		cursorX: -1,
		cursorY: -1,
		prevKey: map[ebiten.Key]bool{},
		started: time.Now(),
	}
	g.loading = asset.Load(cfg.Sprite.Path)
	return g
}

func (g *Game) Update() error {
	g.ticks++

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.pollSprite()

	// Bursts
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.burst(x, y)
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.burst(x, y)
	}

	// Trail
	mx, my := ebiten.CursorPosition()
	inside := mx >= 0 && my >= 0 && mx < g.width && my < g.height
	if inside && !g.cursorIn && g.ticks > 1 {
		g.sound.Play(sound.Whoosh)
	}
	g.cursorIn = inside
	if inside && (mx != g.cursorX || my != g.cursorY) {
		g.sim.Move(float64(mx), float64(my), time.Now())
	}
	g.cursorX, g.cursorY = mx, my

	// Keys
	if justPressed(ebiten.KeyM) {
		g.toggleSound()
	}
	for i, k := range previewKeys {
		if justPressed(k) {
			g.sound.Play(sound.Kinds()[i])
		}
	}
	if justPressed(ebiten.KeyO) && g.loading == nil {
		g.loading = asset.PickAndLoad()
	}
	if justPressed(ebiten.KeyF3) {
		g.showHUD = !g.showHUD
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.sim.Step()
	g.toast.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.sim.Draw(&g.canvas)
	g.drawToast(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.sim.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (g *Game) burst(x, y int) {
	g.sim.Burst(float64(x), float64(y))
	g.sound.Play(sound.Coin)
}

func (g *Game) toggleSound() {
	if g.sound.Toggle() {
		g.toast.Show("Sounds ON")
		g.sound.Play(sound.Success)
	} else {
		g.toast.Show("Sounds OFF")
	}
}

// pollSprite picks up a finished load without blocking the frame.
func (g *Game) pollSprite() {
	if g.loading == nil {
		return
	}
	select {
	case res := <-g.loading:
		g.loading = nil
		switch {
		case res.Canceled:
		case res.Err != nil:
			// keep whatever sprite we had; with none, pennies stay hidden
			log.Printf("sprite: %v", res.Err)
		default:
			g.canvas.sprite = ebiten.NewImageFromImage(res.Image)
			name := "built-in coin"
			if res.Path != "" {
				name = filepath.Base(res.Path)
			}
			log.Printf("sprite: loaded %s", name)
		}
	default:
	}
}
