package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData describes a static platform body.
type PlatformData struct {
	IsGround bool
	Scale    float64

	// Pop-in animation played on spawn; nil once finished.
	PopIn    *gween.Tween
	PopScale float32
}

var Platform = donburi.NewComponentType[PlatformData]()
