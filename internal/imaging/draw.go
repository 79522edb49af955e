package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultBoxColor is the outline colour used for detected characters.
var DefaultBoxColor = color.NRGBA{R: 0, G: 255, B: 0, A: 255}

// ParseColor parses a hex colour string like "#00FF00" or "#0F0".
// The leading '#' is optional.
func ParseColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// DrawBoxes returns a copy of img with a 1-pixel outline drawn around each
// rectangle. The source image is not modified.
//
// Both corners of a rectangle are treated as inclusive, so the outline of
// image.Rect(10, 10, 30, 30) covers columns 10 and 30 and rows 10 and 30.
// Outlines are clipped to the image bounds; rectangles entirely outside the
// image draw nothing.
func DrawBoxes(img image.Image, rects []image.Rectangle, c color.Color) *image.NRGBA {
	result := imaging.Clone(img)
	// Clone rebases to the origin.
	offset := img.Bounds().Min

	for _, r := range rects {
		r = r.Canon().Sub(offset)
		drawOutline(result, r, c)
	}
	return result
}

func drawOutline(img *image.NRGBA, r image.Rectangle, c color.Color) {
	bounds := img.Bounds()
	set := func(x, y int) {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			img.Set(x, y, c)
		}
	}

	// Only iterate the visible part of each edge.
	x0 := clamp(r.Min.X, bounds.Min.X-1, bounds.Max.X)
	x1 := clamp(r.Max.X, bounds.Min.X-1, bounds.Max.X)
	y0 := clamp(r.Min.Y, bounds.Min.Y-1, bounds.Max.Y)
	y1 := clamp(r.Max.Y, bounds.Min.Y-1, bounds.Max.Y)

	for x := x0; x <= x1; x++ {
		set(x, r.Min.Y)
		set(x, r.Max.Y)
	}
	for y := y0; y <= y1; y++ {
		set(r.Min.X, y)
		set(r.Max.X, y)
	}
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
