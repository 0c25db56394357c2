package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// shadowPad is the transparent margin around a layer before blurring, so
// the blur has room to spread.
const shadowPad = 40

// DropShadow composites a blurred, darkened copy of layer onto dst and then
// the layer itself at pos. The shadow is shifted down by shadowPad so cards
// appear to float above the background.
func DropShadow(dst *image.RGBA, layer *image.NRGBA, pos image.Point, blur float64) {
	lb := layer.Bounds()
	if lb.Empty() {
		return
	}

	shadow := ShadowOf(layer, blur)
	shadowAt := image.Pt(pos.X-shadowPad, pos.Y)
	draw.Draw(dst, shadow.Bounds().Add(shadowAt), shadow, image.Point{}, draw.Over)
	draw.Draw(dst, lb.Sub(lb.Min).Add(pos), layer, lb.Min, draw.Over)
}

// ShadowOf returns the shadow image for layer: the layer padded by
// shadowPad on every side, blurred with the given sigma, with colour
// channels divided by 5 and alpha divided by 3.
func ShadowOf(layer *image.NRGBA, blur float64) *image.NRGBA {
	lb := layer.Bounds()
	canvas := imaging.New(lb.Dx()+2*shadowPad, lb.Dy()+2*shadowPad, color.NRGBA{})
	shadow := imaging.Paste(canvas, layer, image.Pt(shadowPad, shadowPad))
	if blur > 0 {
		shadow = imaging.Blur(shadow, blur)
	}
	return imaging.AdjustFunc(shadow, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{R: c.R / 5, G: c.G / 5, B: c.B / 5, A: c.A / 3}
	})
}
