package scenes

import (
	"image"
	"image/color"

	"github.com/aellingwood/storeshots/internal/copydeck"
	"github.com/aellingwood/storeshots/internal/render"
)

// viewerLayers is the number of cards in the 3D viewer fan.
const viewerLayers = 5

// Viewer draws a horizontal fan of layer cards that shrink, drop, and fade
// from indigo to violet away from a bright centre card.
func Viewer(f Frame, fonts *render.FontSet, deck *copydeck.Deck) *image.RGBA {
	c := render.NewCanvas(f.Width, f.Height, render.RGB(30, 25, 60), render.RGB(10, 10, 20))

	var titleY, subtitleY, centerY, layerW, layerH, spacing int
	if f.Landscape {
		titleY, subtitleY = f.S(80), f.S(150)
		centerY = f.Height/2 + f.S(50)
		layerW, layerH = f.S(450), f.S(290)
		spacing = f.S(100)
	} else {
		titleY, subtitleY = f.S(180), f.S(270)
		centerY = f.Height/2 + f.S(100)
		layerW, layerH = f.S(700), f.S(450)
		spacing = f.S(120)
	}

	header(c, fonts, deck.Viewer.Title, deck.Viewer.Subtitle, titleY, subtitleY)

	centerX := f.Width / 2
	mid := viewerLayers / 2
	for i := 0; i < viewerLayers; i++ {
		dist := absInt(i - mid)
		layerScale := 1.0 - float64(dist)*0.08
		w := int(float64(layerW) * layerScale)
		h := int(float64(layerH) * layerScale)

		col, opacity := viewerLayerStyle(dist, mid)
		pos := image.Pt(
			centerX-w/2+(i-mid)*spacing,
			centerY-h/2+dist*f.S(40),
		)
		c.Layer(w, h, col, opacity, pos, f.Blur(25))
	}

	return c.Image()
}

// viewerLayerStyle returns the colour and opacity of a card dist steps from
// the centre of a fan with mid cards on each side.
func viewerLayerStyle(dist, mid int) (color.RGBA, uint8) {
	if dist == 0 {
		return render.SoftWhite, 255
	}
	t := float64(dist) / float64(mid)
	return render.Lerp(render.Indigo, render.Violet, t), uint8(255 - t*100)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
