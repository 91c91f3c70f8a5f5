package components

import "github.com/yohamta/donburi"

// SquashStretchData tracks sprite scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY   float64
	TargetX, TargetY float64
	LerpSpeed        float64
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
