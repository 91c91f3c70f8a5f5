package systems

import (
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives each player's state from how its body moved this
// frame and advances the matching animation. Runs after collisions so the
// grounded flag is current.
func UpdateStates(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		updatePlayerState(state, physics)

		anim := components.Animation.Get(e)
		anim.SetAnimation(state.CurrentState)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

func updatePlayerState(state *components.StateData, physics *components.PhysicsData) {
	state.StateTimer++

	next := cfg.Idle
	switch {
	case physics.OnGround == nil && physics.SpeedY < 0:
		next = cfg.Jump
	case physics.OnGround == nil:
		next = cfg.Fall
	case physics.SpeedX != 0:
		next = cfg.Running
	}

	if next == state.CurrentState {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}
