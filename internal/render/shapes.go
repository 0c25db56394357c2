package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// minLayerRadius is the smallest corner radius a floating layer gets.
const minLayerRadius = 12

// FillRoundedRect fills r in dst with a rounded rectangle whose corners are
// quarter circles of the given radius. Pixels outside r are never touched.
// The radius is clamped to half of the shorter side.
func FillRoundedRect(dst *image.RGBA, r image.Rectangle, radius int, c color.Color) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	radius = clampRadius(radius, r.Dx(), r.Dy())

	dc := gg.NewContextForRGBA(dst)
	dc.DrawRoundedRectangle(
		float64(r.Min.X), float64(r.Min.Y),
		float64(r.Dx()), float64(r.Dy()),
		float64(radius),
	)
	dc.SetColor(c)
	dc.Fill()
}

// LayerRadius returns the corner radius used for a floating layer of the
// given width.
func LayerRadius(width int) int {
	return max(minLayerRadius, int(float64(width)*0.03))
}

// FloatingLayer returns a width x height transparent image holding a single
// rounded card of colour c at the given opacity.
func FloatingLayer(width, height int, c color.RGBA, opacity uint8) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	FillRoundedRect(canvas, canvas.Bounds(), LayerRadius(width), color.NRGBA{R: c.R, G: c.G, B: c.B, A: opacity})
	return imaging.Clone(canvas)
}

func clampRadius(radius, w, h int) int {
	if radius < 0 {
		return 0
	}
	limit := min(w, h) / 2
	if radius > limit {
		return limit
	}
	return radius
}
