// pkg/render/color.go
package render

import "image/color"

// Darken уменьшает яркость цвета в f раз (0..1), альфа не меняется.
func Darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// Lighten смешивает цвет с белым: f=0 оставляет как есть, f=1 дает белый.
func Lighten(c color.RGBA, f float64) color.RGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*f) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
