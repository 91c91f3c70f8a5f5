package gamemath

import "math"

// FloatingOrigin maps world coordinates to the local frame of a fixed-size
// collision space: local = world + offset.
type FloatingOrigin struct {
	OffsetX float64
	OffsetY float64
}

func (o FloatingOrigin) ToLocal(x, y float64) (float64, float64) {
	return x + o.OffsetX, y + o.OffsetY
}

func (o FloatingOrigin) ToWorld(x, y float64) (float64, float64) {
	return x - o.OffsetX, y - o.OffsetY
}

// Rebase grows the vertical offset in multiples of step until anchorLocalY
// would sit at or below threshold, and returns the distance every body must
// be moved down. It returns 0 when no rebase is needed.
func (o *FloatingOrigin) Rebase(anchorLocalY, threshold, step float64) float64 {
	if anchorLocalY >= threshold || step <= 0 {
		return 0
	}
	shift := math.Ceil((threshold-anchorLocalY)/step) * step
	o.OffsetY += shift
	return shift
}

// OffscreenBelow reports whether a platform at y has scrolled out of view
// below a player at playerY.
func OffscreenBelow(y, playerY, screenHeight float64) bool {
	return y > playerY+screenHeight
}

// HasFallen reports whether the player is past the death line.
func HasFallen(playerY, deathY float64) bool {
	return playerY > deathY
}
