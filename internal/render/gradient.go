// Package render provides the drawing primitives used by the screenshot
// scenes: gradient backgrounds, rounded "layer" cards with drop shadows,
// text, and the font loader.
package render

import (
	"image"
	"image/color"
)

// Direction selects the axis a gradient runs along.
type Direction int

const (
	// Vertical runs from the top row to the bottom row.
	Vertical Direction = iota
	// Horizontal runs from the left column to the right column.
	Horizontal
)

// Gradient returns an opaque width x height image filled with a linear
// gradient from c1 to c2. Row (or column) i uses ratio i/height (or
// i/width), so the first row is exactly c1 and the last row is one step
// short of c2.
func Gradient(width, height int, c1, c2 color.RGBA, dir Direction) *image.RGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return img
	}

	if dir == Horizontal {
		// Build the first row once and copy it down.
		row := img.Pix[:width*4]
		for x := 0; x < width; x++ {
			setPix(row[x*4:], Lerp(c1, c2, float64(x)/float64(width)))
		}
		for y := 1; y < height; y++ {
			copy(img.Pix[y*img.Stride:], row)
		}
		return img
	}

	for y := 0; y < height; y++ {
		c := Lerp(c1, c2, float64(y)/float64(height))
		line := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			setPix(line[x*4:], c)
		}
	}
	return img
}

func setPix(p []uint8, c color.RGBA) {
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}
