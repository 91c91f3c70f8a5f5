package components

import (
	"github.com/automoto/suzujump/gamemath"
	"github.com/yohamta/donburi"
)

// GeneratorData owns the platform walk of the current run (singleton component).
type GeneratorData struct {
	*gamemath.PlatformGenerator
	Seed int64
}

var Generator = donburi.NewComponentType[GeneratorData]()
