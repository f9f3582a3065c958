// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampInt — то же самое для целых
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad переводит градусы в радианы
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
