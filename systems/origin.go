package systems

import (
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrigin keeps the climb inside the fixed-size collision space. Once
// the player rises past cfg.World.RebaseAbove in local coordinates, every
// body, the camera and the backdrop move down together and the origin
// offset grows by the same amount, so world positions never change.
func UpdateOrigin(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	world, _, _, ok := getWorld(e)
	if !ok {
		return
	}

	_, localY := components.Object.Get(playerEntry).Center()
	shift := world.Origin.Rebase(localY, cfg.World.RebaseAbove, cfg.World.RebaseShift)
	if shift == 0 {
		return
	}
	world.Rebases++

	// Walk entities rather than the space: a body outside the grid is not
	// registered in any cell but must still move.
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		obj.Y += shift
		obj.Update()
	})
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(cameraEntry).Position.Y += shift
	}
	if bgEntry, ok := components.Background.First(e.World); ok {
		components.Background.Get(bgEntry).Y += shift
	}

	log.Debug("origin rebased", "shift", shift, "offsetY", world.Origin.OffsetY, "rebases", world.Rebases)
}
