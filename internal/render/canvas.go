package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas is a drawing surface backed by an RGBA image. Shapes and text are
// drawn through a gg context that writes straight into the same pixels, so
// shadow compositing and vector drawing can be interleaved freely.
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// NewCanvas returns a width x height canvas filled with a vertical gradient
// from top to bottom.
func NewCanvas(width, height int, top, bottom color.RGBA) *Canvas {
	img := Gradient(width, height, top, bottom, Vertical)
	return &Canvas{img: img, dc: gg.NewContextForRGBA(img)}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Text draws s with its top edge at y and its left edge at x.
func (c *Canvas) Text(face font.Face, s string, x, y int, col color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, float64(x), float64(y+ascent))
}

// CenteredText draws s horizontally centred on the canvas with its top edge
// at y.
func (c *Canvas) CenteredText(face font.Face, s string, y int, col color.Color) {
	c.Text(face, s, (c.Width()-TextWidth(face, s))/2, y, col)
}

// TextWidth returns the advance width of s in whole pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// Ellipse fills the ellipse inscribed in the box (x0,y0)-(x1,y1).
func (c *Canvas) Ellipse(x0, y0, x1, y1 int, col color.Color) {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	c.dc.DrawEllipse(cx, cy, rx, ry)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// Line strokes a straight line of the given width.
func (c *Canvas) Line(x0, y0, x1, y1 int, width float64, col color.Color) {
	c.dc.SetLineWidth(width)
	c.dc.SetColor(col)
	c.dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	c.dc.Stroke()
}

// Layer draws a floating card of the given size and colour at pos, with a
// drop shadow blurred by blur.
func (c *Canvas) Layer(width, height int, col color.RGBA, opacity uint8, pos image.Point, blur float64) {
	DropShadow(c.img, FloatingLayer(width, height, col, opacity), pos, blur)
}
