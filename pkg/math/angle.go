package math

import "math"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// WrapDegrees maps any angle into [0, 360).
func WrapDegrees(deg float32) float32 {
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	// -tiny + 360 rounds up to 360 in float32
	if w >= 360 {
		w = 0
	}
	return w
}
