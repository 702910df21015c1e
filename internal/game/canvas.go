package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas draws particles onto the Ebiten screen.
type screenCanvas struct {
	dst    *ebiten.Image
	sprite *ebiten.Image
	bg     color.Color
	op     ebiten.DrawImageOptions
}

func (c *screenCanvas) Clear() { c.dst.Fill(c.bg) }

func (c *screenCanvas) SpriteReady() bool { return c.sprite != nil }

func (c *screenCanvas) DrawSprite(x, y, size, rotation, alpha float64) {
	b := c.sprite.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	c.op.GeoM.Reset()
	c.op.GeoM.Translate(-w/2, -h/2)
	c.op.GeoM.Scale(size/w, size/h)
	c.op.GeoM.Rotate(rotation)
	c.op.GeoM.Translate(x, y)
	c.op.ColorScale.Reset()
	c.op.ColorScale.ScaleAlpha(float32(alpha))
	c.op.Filter = ebiten.FilterLinear

	c.dst.DrawImage(c.sprite, &c.op)
}

func (c *screenCanvas) FillCircle(x, y, radius float64, col color.Color, alpha float64) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(radius), fade(col, alpha), true)
}
