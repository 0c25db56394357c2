package scenes

import (
	"image"
	"image/color"

	"github.com/aellingwood/storeshots/internal/copydeck"
	"github.com/aellingwood/storeshots/internal/render"
)

// Hero draws three stacked layer cards fanned out under the headline, with
// the product name near the bottom.
func Hero(f Frame, fonts *render.FontSet, deck *copydeck.Deck) *image.RGBA {
	c := render.NewCanvas(f.Width, f.Height, render.RGB(20, 20, 35), render.RGB(10, 10, 20))

	var (
		titleY, subtitleY, baseY int
		layerW, layerH           int
		offsetX, offsetY         int
		taglineY                 int
	)
	if f.Landscape {
		titleY, subtitleY = f.S(80), f.S(160)
		baseY = f.S(280)
		layerW, layerH = f.S(500), f.S(320)
		offsetX, offsetY = f.S(80), f.S(120)
		taglineY = f.Height - f.S(150)
	} else {
		titleY, subtitleY = f.S(180), f.S(280)
		baseY = f.S(800)
		layerW, layerH = f.S(800), f.S(500)
		offsetX, offsetY = f.S(60), f.S(180)
		taglineY = f.Height - f.S(300)
	}

	header(c, fonts, deck.Hero.Title, deck.Hero.Subtitle, titleY, subtitleY)

	layers := []struct {
		w, h    int
		col     color.RGBA
		opacity uint8
		dx, dy  int
	}{
		{layerW, layerH, render.Indigo, 180, -offsetX, 0},
		{int(float64(layerW) * 0.95), int(float64(layerH) * 0.94), render.Violet, 220, 0, offsetY},
		{int(float64(layerW) * 0.9), int(float64(layerH) * 0.88), render.SoftWhite, 255, offsetX, offsetY * 2},
	}
	centerX := f.Width / 2
	for _, l := range layers {
		pos := image.Pt(centerX-l.w/2+l.dx, baseY+l.dy)
		c.Layer(l.w, l.h, l.col, l.opacity, pos, f.Blur(30))
	}

	c.CenteredText(fonts.Title, deck.Hero.Tagline, taglineY, render.SoftWhite)
	return c.Image()
}
