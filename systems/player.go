package systems

import (
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	handleMovementInput(input, player, physics)
	handleJumpInput(ecs, input, playerEntry, player, physics)
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	physics.SpeedX = 0
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	// Opposite keys cancel out
	if left == right {
		return
	}
	if right {
		physics.SpeedX = cfg.Player.MoveSpeed
		player.Direction.X = cfg.DirectionRight
	} else {
		physics.SpeedX = -cfg.Player.MoveSpeed
		player.Direction.X = cfg.DirectionLeft
	}
}

func handleJumpInput(e *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData) {
	if !GetAction(input, cfg.ActionJump).JustPressed || physics.OnGround == nil {
		return
	}

	physics.SpeedY = -cfg.Player.JumpSpeed
	physics.OnGround = nil
	player.Jumps++
	PlaySFX(e, cfg.SoundJump)
	TriggerSquashStretch(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
}
