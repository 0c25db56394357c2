package scenes

import (
	"image"
	"strconv"

	"github.com/aellingwood/storeshots/internal/copydeck"
	"github.com/aellingwood/storeshots/internal/render"
)

// Steps draws the numbered how-it-works sequence: a row of steps in
// landscape, a connected column in portrait.
func Steps(f Frame, fonts *render.FontSet, deck *copydeck.Deck) *image.RGBA {
	c := render.NewCanvas(f.Width, f.Height, render.RGB(15, 15, 30), render.RGB(8, 8, 18))

	steps := deck.Steps.Steps
	if f.Landscape {
		c.CenteredText(fonts.Title, deck.Steps.Title, f.S(60), render.SoftWhite)

		stepY := f.S(200)
		stepW := f.S(400)
		startX := (f.Width - len(steps)*stepW) / 2
		radius := f.S(50)

		for i, step := range steps {
			x := startX + i*stepW + stepW/2
			y := stepY

			c.Ellipse(x-radius, y, x+radius, y+radius*2, render.Indigo)
			c.Text(fonts.Num, strconv.Itoa(i+1), x-f.S(12), y+f.S(25), render.SoftWhite)

			c.Text(fonts.Step, step.Name, x-f.S(60), y+f.S(130), render.SoftWhite)
			descW := render.TextWidth(fonts.Subtitle, step.Description)
			c.Text(fonts.Subtitle, step.Description, x-descW/2, y+f.S(190), render.MidGray)
		}
		return c.Image()
	}

	c.CenteredText(fonts.Title, deck.Steps.Title, f.S(180), render.SoftWhite)

	stepY := f.S(450)
	stepGap := f.S(550)
	numX := f.Width/2 - f.S(350)

	for i, step := range steps {
		y := stepY + i*stepGap

		c.Ellipse(numX, y, numX+f.S(100), y+f.S(100), render.Indigo)
		c.Text(fonts.Num, strconv.Itoa(i+1), numX+f.S(35), y+f.S(25), render.SoftWhite)

		c.Text(fonts.Step, step.Name, numX+f.S(150), y+f.S(10), render.SoftWhite)
		c.Text(fonts.Subtitle, step.Description, numX+f.S(150), y+f.S(65), render.MidGray)

		if i < len(steps)-1 {
			lineX := numX + f.S(50)
			c.Line(lineX, y+f.S(110), lineX, y+stepGap-f.S(10), 3, render.Indigo)
		}
	}
	return c.Image()
}
