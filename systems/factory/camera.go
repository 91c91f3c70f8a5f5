package factory

import (
	"github.com/automoto/suzujump/archetypes"
	"github.com/automoto/suzujump/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera adds the camera centred on the local point (x, y) so the
// first frame does not pan in from the origin.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
	return camera
}

// CreateBackground adds the screen-aligned backdrop.
func CreateBackground(ecs *ecs.ECS) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)
	components.Background.Set(bg, &components.BackgroundData{})
	return bg
}
