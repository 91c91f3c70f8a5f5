package gamemath

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApplyGravity accelerates a vertical speed and caps it at maxFall.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}
