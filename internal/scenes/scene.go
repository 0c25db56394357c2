// Package scenes lays out the five marketing screenshots. Every scene is
// designed against a 1290px reference edge and scaled to the target canvas.
package scenes

import (
	"fmt"
	"image"

	"github.com/aellingwood/storeshots/internal/copydeck"
	"github.com/aellingwood/storeshots/internal/render"
)

// designEdge is the reference width (portrait) or height (landscape) that
// every layout constant is expressed against.
const designEdge = 1290

// Frame describes the target canvas.
type Frame struct {
	Width     int
	Height    int
	Landscape bool
	Scale     float64
}

// NewFrame returns the frame for a width x height canvas. Portrait frames
// scale by width, landscape frames by height.
func NewFrame(width, height int) Frame {
	landscape := width > height
	scale := float64(width) / designEdge
	if landscape {
		scale = float64(height) / designEdge
	}
	return Frame{Width: width, Height: height, Landscape: landscape, Scale: scale}
}

// S scales a design-space length to the frame, truncating to whole pixels.
func (f Frame) S(v float64) int {
	return int(v * f.Scale)
}

// Blur scales a design-space blur radius.
func (f Frame) Blur(v float64) float64 {
	return float64(f.S(v))
}

// RenderFunc draws a scene.
type RenderFunc func(f Frame, fonts *render.FontSet, deck *copydeck.Deck) *image.RGBA

// Template is a named scene.
type Template struct {
	Name   string
	Render RenderFunc
}

// Filename returns the output file name for the template with the given
// extension (without dot).
func (t Template) Filename(ext string) string {
	return t.Name + "." + ext
}

var templates = []Template{
	{Name: "01_hero", Render: Hero},
	{Name: "02_3d_viewer", Render: Viewer},
	{Name: "03_export", Render: Export},
	{Name: "04_projects", Render: Projects},
	{Name: "05_simple", Render: Steps},
}

// All returns every template in output order.
func All() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Lookup returns the template with the given name.
func Lookup(name string) (Template, error) {
	for _, t := range templates {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("unknown template %q", name)
}

// Names returns the names of all templates in order.
func Names() []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

// header draws a centred title and, when subtitle is non-empty, a centred
// subtitle below it.
func header(c *render.Canvas, fonts *render.FontSet, title, subtitle string, titleY, subtitleY int) {
	c.CenteredText(fonts.Title, title, titleY, render.SoftWhite)
	if subtitle != "" {
		c.CenteredText(fonts.Subtitle, subtitle, subtitleY, render.MidGray)
	}
}
