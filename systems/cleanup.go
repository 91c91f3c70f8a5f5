package systems

import (
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCleanup destroys platforms that have scrolled a full screen below
// the player, removing them from the world and the collision space.
func UpdateCleanup(e *ecs.ECS) {
	_, py, ok := playerWorldPos(e)
	if !ok {
		return
	}
	world, _, _, _ := getWorld(e)
	screenHeight := float64(cfg.C.Height)

	var toRemove []*donburi.Entry
	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		_, y := world.ToWorld(components.Object.Get(entry).Center())
		if gamemath.OffscreenBelow(y, py, screenHeight) {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		entry.Remove()
	}
}
