package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/penny-rain/internal/config"
	"github.com/iburimskiy/penny-rain/internal/sound"
)

var (
	toastLeft = color.RGBA{R: 0xC8, G: 0x75, B: 0x33, A: 0xFF}
	toastText = color.RGBA{R: 0x0F, G: 0x0F, B: 0x0F, A: 0xFF}
	hudPanel  = color.RGBA{R: 20, G: 25, B: 35, A: 200}
	hudBorder = color.RGBA{R: 60, G: 70, B: 90, A: 255}
)

const (
	toastHeight   = 36
	toastPadding  = 24
	glyphWidth    = 7 // basicfont.Face7x13
	waveformWidth = 256
	waveformHigh  = 60
)

// tapper is implemented by backends that can show what they just played.
type tapper interface {
	Tap() *sound.Tap
}

func (g *Game) drawToast(screen *ebiten.Image) {
	if !g.toast.Visible() {
		return
	}
	msg := g.toast.Text()
	alpha := g.toast.Alpha()

	w := float32(len(msg)*glyphWidth + 2*toastPadding)
	h := float32(toastHeight)
	x := float32(g.width-config.ToastRight) - w + float32(g.toast.Offset())
	y := float32(config.ToastTop)
	r := h / 2

	// pill: two end caps and a body, copper on the left fading to gold
	vector.DrawFilledCircle(screen, x+r, y+r, r, fade(toastLeft, alpha), true)
	vector.DrawFilledCircle(screen, x+w-r, y+r, r, fade(config.TrailColor, alpha), true)
	half := (w - 2*r) / 2
	vector.DrawFilledRect(screen, x+r, y, half, h, fade(toastLeft, alpha), true)
	vector.DrawFilledRect(screen, x+r+half, y, half, h, fade(config.TrailColor, alpha), true)

	text.Draw(screen, msg, basicfont.Face7x13, int(x)+toastPadding, int(y+r)+4, fade(toastText, alpha))
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	state := "on"
	if !g.sound.Enabled() {
		state = "off"
	}
	stats := fmt.Sprintf("TPS %.0f  FPS %.0f  up %s\nambient %d  burst %d  trail %d\nsound %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), formatDuration(time.Since(g.started)),
		g.sim.AmbientCount(), g.sim.BurstCount(), g.sim.TrailCount(), state)
	ebitenutil.DebugPrintAt(screen, stats, 12, 12)

	t, ok := g.sound.Backend().(tapper)
	if !ok {
		return
	}
	samples := t.Tap().Snapshot(waveformWidth)
	if len(samples) < 2 {
		return
	}

	bx, by := float32(12), float32(70)
	vector.DrawFilledRect(screen, bx, by, waveformWidth, waveformHigh, hudPanel, false)
	vector.StrokeRect(screen, bx, by, waveformWidth, waveformHigh, 1, hudBorder, false)

	mid := by + waveformHigh/2
	cr, cg, cb := hsvToRgb(float64(g.ticks)*2, 0.8, 0.9)
	lineColor := color.RGBA{R: cr, G: cg, B: cb, A: 255}
	for i := 1; i < len(samples); i++ {
		y0 := mid - float32(clampSample(samples[i-1][0]))*waveformHigh/2
		y1 := mid - float32(clampSample(samples[i][0]))*waveformHigh/2
		vector.StrokeLine(screen, bx+float32(i-1), y0, bx+float32(i), y1, 1, lineColor, false)
	}
}

// clampSample keeps a sample in [-1, 1] for drawing.
func clampSample(v float64) float64 {
	return clamp01((v+1)/2)*2 - 1
}
