package factory

import (
	"github.com/automoto/suzujump/archetypes"
	"github.com/automoto/suzujump/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}
