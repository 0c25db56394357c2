package render

import "image/color"

// Brand colours shared by every scene.
var (
	Indigo    = color.RGBA{R: 99, G: 102, B: 241, A: 255}
	Violet    = color.RGBA{R: 139, G: 92, B: 246, A: 255}
	SoftWhite = color.RGBA{R: 250, G: 250, B: 255, A: 255}
	MidGray   = color.RGBA{R: 120, G: 120, B: 140, A: 255}
	CardFill  = color.RGBA{R: 40, G: 35, B: 65, A: 255}
)

// RGB is a shorthand for an opaque colour.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Lerp mixes c1 and c2 channel-wise at ratio t, truncating toward zero.
// The alpha of the result is always opaque.
func Lerp(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(c1.R, c2.R, t),
		G: lerpChannel(c1.G, c2.G, t),
		B: lerpChannel(c1.B, c2.B, t),
		A: 255,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a)*(1-t) + float64(b)*t
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
