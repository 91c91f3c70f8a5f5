package systems

import (
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGenerator tops up the platform column once the player climbs within
// reach of the highest platform.
func UpdateGenerator(e *ecs.ECS) {
	_, py, ok := playerWorldPos(e)
	if !ok {
		return
	}
	_, gen, _, _ := getWorld(e)
	if !gen.NeedsMore(py) {
		return
	}
	spawnPlatforms(e, cfg.Generator.RefillBatch)
	log.Debug("platforms refilled", "total", gen.Count(), "top", gen.Last().Y)
}

// spawnPlatforms places n more platforms from the generator.
func spawnPlatforms(e *ecs.ECS, n int) {
	world, gen, _, ok := getWorld(e)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, p := range gen.Batch(n) {
		x, y := world.ToLocal(p.X, p.Y)
		factory.CreatePlatform(e, space, x, y, cfg.Platform.Scale, false)
	}
}
