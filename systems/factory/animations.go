package factory

import (
	"github.com/automoto/suzujump/assets/animations"
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
)

// GenerateAnimations builds per-state frame runs from animation definitions.
// Sheet images are resolved by the renderer, so this is safe without a GPU.
func GenerateAnimations(defs map[cfg.StateID]cfg.AnimationDef, frameWidth, frameHeight int) *components.AnimationData {
	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation, len(defs)),
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		CurrentSheet: cfg.StateNone,
	}
	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	return animData
}
