package scenes

import (
	"image"

	"github.com/aellingwood/storeshots/internal/copydeck"
	"github.com/aellingwood/storeshots/internal/render"
)

// Export draws one card per export option, side by side in landscape and
// stacked in portrait. Each card has a round icon, a name, and a short
// description.
func Export(f Frame, fonts *render.FontSet, deck *copydeck.Deck) *image.RGBA {
	c := render.NewCanvas(f.Width, f.Height, render.RGB(25, 20, 45), render.RGB(15, 15, 25))

	options := deck.Export.Options
	if f.Landscape {
		header(c, fonts, deck.Export.Title, deck.Export.Subtitle, f.S(80), f.S(150))

		cardW, cardH := f.S(500), f.S(140)
		startY := f.S(280)
		gutter := f.S(40)
		totalW := len(options)*cardW + (len(options)-1)*gutter
		startX := (f.Width - totalW) / 2

		for i, opt := range options {
			x := startX + i*(cardW+gutter)
			y := startY
			c.Layer(cardW, cardH, render.CardFill, 230, image.Pt(x, y), f.Blur(20))

			iconX := x + f.S(30)
			iconY := y + cardH/2
			c.Ellipse(iconX, iconY-f.S(25), iconX+f.S(50), iconY+f.S(25), render.Indigo)

			c.Text(fonts.Step, opt.Name, x+f.S(100), y+f.S(30), render.SoftWhite)
			c.Text(fonts.Label, opt.Description, x+f.S(100), y+f.S(85), render.MidGray)
		}
		return c.Image()
	}

	header(c, fonts, deck.Export.Title, deck.Export.Subtitle, f.S(180), f.S(270))

	cardW, cardH := f.S(900), f.S(180)
	startY := f.S(450)
	gap := f.S(220)
	cardX := (f.Width - cardW) / 2

	for i, opt := range options {
		y := startY + i*gap
		c.Layer(cardW, cardH, render.CardFill, 230, image.Pt(cardX, y), f.Blur(20))

		iconX := cardX + f.S(50)
		iconY := y + cardH/2
		c.Ellipse(iconX, iconY-f.S(35), iconX+f.S(70), iconY+f.S(35), render.Indigo)

		c.Text(fonts.Title, opt.Name, cardX+f.S(150), y+f.S(45), render.SoftWhite)
		c.Text(fonts.Label, opt.Description, cardX+f.S(150), y+f.S(115), render.MidGray)
	}
	return c.Image()
}
