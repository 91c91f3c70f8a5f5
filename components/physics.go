package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
	OnGround     *resolv.Object
	WasOnGround  bool // grounded state of the previous frame, for landing detection
}

var Physics = donburi.NewComponentType[PhysicsData]()
