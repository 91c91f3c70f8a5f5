package components

import (
	"github.com/automoto/suzujump/assets/animations"
	"github.com/automoto/suzujump/config"
	"github.com/yohamta/donburi"
)

// AnimationData tracks which frame of a sprite sheet an entity shows.
// The sheet itself is owned by the renderer.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentSheet = state
		return
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	a.CurrentAnimation.Restart()
	a.CurrentAnimation.Looped = false
}

var Animation = donburi.NewComponentType[AnimationData]()
