package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the collision body of an entity. Positions are in the
// collision space's local frame, anchored at the top-left corner.
type ObjectData struct {
	*resolv.Object
}

// Center returns the centre of the body in local coordinates.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// SetCenter moves the body so its centre sits at (x, y) and re-registers it
// with its space.
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
