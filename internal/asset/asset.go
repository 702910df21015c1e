// Package asset loads the penny sprite off the game goroutine.
package asset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/ncruces/zenity"
)

// CoinSize is the edge length of the built-in coin sprite.
const CoinSize = 128

// Result is delivered once per load request.
type Result struct {
	Path  string
	Image image.Image
	Err   error
	// Canceled is set when the user closed the picker without choosing.
	Canceled bool
}

// Load decodes path in the background. An empty path yields the built-in coin.
// The returned channel receives exactly one Result.
func Load(path string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		ch <- load(path)
	}()
	return ch
}

func load(path string) Result {
	if path == "" {
		return Result{Image: Coin(CoinSize)}
	}
	img, err := Decode(path)
	return Result{Path: path, Image: img, Err: err}
}

// Decode reads a PNG or JPEG from disk.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	return img, nil
}

// PickAndLoad asks the user for an image and then loads it, all in the background.
func PickAndLoad() <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Choose Penny Image"),
			zenity.FileFilters{{
				Name:     "Images",
				Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
			}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				ch <- Result{Canceled: true}
				return
			}
			ch <- Result{Err: fmt.Errorf("pick sprite: %w", err)}
			return
		}
		ch <- load(path)
	}()
	return ch
}

var (
	copperRim   = color.NRGBA{R: 0x8A, G: 0x4B, B: 0x1E, A: 0xFF}
	copperFace  = color.NRGBA{R: 0xC8, G: 0x75, B: 0x33, A: 0xFF}
	copperLight = color.NRGBA{R: 0xF5, G: 0xA6, B: 0x23, A: 0xFF}
)

// Coin draws a shaded copper penny on a transparent square.
func Coin(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	r := c - 1
	rim := r * 0.86

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Hypot(dx, dy)
			if d > r {
				continue
			}

			var col color.NRGBA
			if d > rim {
				col = copperRim
			} else {
				// light from the upper left
				t := clamp01(0.5 - (dx+dy)/(4*rim))
				col = lerp(copperFace, copperLight, t)
				// faint inner ring
				if math.Abs(d-rim*0.8) < 1 {
					col = lerp(col, copperRim, 0.5)
				}
			}

			// antialias the outer edge
			if edge := r - d; edge < 1 {
				col.A = uint8(float64(col.A) * edge)
			}
			img.SetNRGBA(x, y, col)
		}
	}
	return img
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
