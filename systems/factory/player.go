package factory

import (
	"github.com/automoto/suzujump/archetypes"
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer adds the cat with its body centred on the local point (x, y).
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight},
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Fall,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})

	animData := GenerateAnimations(cfg.PlayerAnimations, cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	animData.SetAnimation(cfg.Fall)
	components.Animation.Set(player, animData)

	return player
}
