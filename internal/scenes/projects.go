package scenes

import (
	"image"
	"image/color"

	"github.com/aellingwood/storeshots/internal/copydeck"
	"github.com/aellingwood/storeshots/internal/render"
)

// projectColors cycles across the project grid.
var projectColors = []color.RGBA{
	render.Indigo,
	render.Violet,
	render.RGB(100, 140, 230),
	render.RGB(140, 100, 200),
	render.RGB(80, 120, 200),
	render.RGB(120, 80, 180),
	render.RGB(90, 110, 220),
	render.RGB(150, 90, 190),
}

// Projects draws a grid of square project cards, 4x2 in landscape and 2x3
// in portrait, each captioned with its layer count.
func Projects(f Frame, fonts *render.FontSet, deck *copydeck.Deck) *image.RGBA {
	c := render.NewCanvas(f.Width, f.Height, render.RGB(20, 25, 40), render.RGB(10, 12, 22))

	var titleY, subtitleY, cardSize, cols, rows, startY int
	if f.Landscape {
		titleY, subtitleY = f.S(60), f.S(130)
		cardSize = f.S(320)
		cols, rows = 4, 2
		startY = f.S(220)
	} else {
		titleY, subtitleY = f.S(180), f.S(270)
		cardSize = f.S(520)
		cols, rows = 2, 3
		startY = f.S(420)
	}

	header(c, fonts, deck.Projects.Title, deck.Projects.Subtitle, titleY, subtitleY)

	gap := f.S(50)
	totalW := cols*cardSize + (cols-1)*gap
	startX := (f.Width - totalW) / 2

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := startX + col*(cardSize+gap)
			y := startY + row*(cardSize+gap)
			idx := row*cols + col

			c.Layer(cardSize, cardSize, projectColors[idx%len(projectColors)], 200, image.Pt(x, y), f.Blur(20))
			c.Text(fonts.Label, deck.ProjectLabel(3+idx), x+f.S(20), y+cardSize-f.S(40), render.SoftWhite)
		}
	}
	return c.Image()
}
