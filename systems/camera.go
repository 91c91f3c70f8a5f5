package systems

import (
	"github.com/automoto/suzujump/components"
	"github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the camera on the player and pins the backdrop to
// the view so it always fills the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		targetX, targetY := components.Object.Get(playerEntry).Center()
		camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
		camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
	}

	if bgEntry, ok := components.Background.First(e.World); ok {
		bg := components.Background.Get(bgEntry)
		bg.X = camera.Position.X - float64(config.C.Width)/2
		bg.Y = camera.Position.Y - float64(config.C.Height)/2
	}
}

// viewOrigin returns the local coordinate drawn at the screen's top-left corner.
func viewOrigin(e *ecs.ECS, screenW, screenH int) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(screenW)/2, camera.Position.Y - float64(screenH)/2, true
}
