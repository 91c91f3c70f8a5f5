package components

import (
	"github.com/automoto/suzujump/gamemath"
	"github.com/yohamta/donburi"
)

// WorldData maps world coordinates onto the collision space (singleton component).
type WorldData struct {
	Origin  gamemath.FloatingOrigin
	Rebases int
}

// ToWorld converts a local point to world coordinates.
func (w *WorldData) ToWorld(x, y float64) (float64, float64) {
	return w.Origin.ToWorld(x, y)
}

// ToLocal converts a world point to local coordinates.
func (w *WorldData) ToLocal(x, y float64) (float64, float64) {
	return w.Origin.ToLocal(x, y)
}

var World = donburi.NewComponentType[WorldData]()
