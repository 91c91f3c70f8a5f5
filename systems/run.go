package systems

import (
	"time"

	"github.com/automoto/suzujump/assets"
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewRun populates a fresh world with everything a run starts with: the
// collision space, the ground, the player, the camera and the first batch
// of platforms. A zero seed picks one from the clock.
func NewRun(e *ecs.ECS, seed int64) *donburi.Entry {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	layout := assets.MustLoadStartLayout()
	startX, startY := cfg.StartX(), cfg.StartY()

	spaceEntry := factory.CreateSpace(e, cfg.World.SpaceWidth, cfg.World.SpaceHeight, cfg.World.CellSize)
	space := components.Space.Get(spaceEntry)

	spawnX, spawnY := startX+layout.Spawn.X, startY+layout.Spawn.Y
	groundX, groundY := startX+layout.Ground.X, startY+layout.Ground.Y

	// The watermark starts at the ground centre, so settling on the ground
	// is already the first point.
	worldEntry := factory.CreateWorld(e, seed, startX+layout.Seed.X, startY+layout.Seed.Y, groundY)
	world := components.World.Get(worldEntry)

	groundScale := cfg.Platform.GroundScale
	if layout.GroundScale > 0 {
		groundScale = layout.GroundScale
	}
	gx, gy := world.ToLocal(groundX, groundY)
	factory.CreatePlatform(e, space, gx, gy, groundScale, true)

	px, py := world.ToLocal(spawnX, spawnY)
	factory.CreatePlayer(e, space, px, py)
	factory.CreateCamera(e, px, py)
	factory.CreateBackground(e)

	spawnPlatforms(e, cfg.Generator.InitialBatch)

	log.Debug("run started", "seed", seed, "spawnX", spawnX, "spawnY", spawnY)
	return worldEntry
}

// getWorld returns the run bookkeeping entity's components.
func getWorld(e *ecs.ECS) (*components.WorldData, *components.GeneratorData, *components.ScoreData, bool) {
	entry, ok := components.World.First(e.World)
	if !ok {
		return nil, nil, nil, false
	}
	return components.World.Get(entry), components.Generator.Get(entry), components.Score.Get(entry), true
}

// playerWorldPos returns the player's body centre in world coordinates.
func playerWorldPos(e *ecs.ECS) (x, y float64, ok bool) {
	playerEntry, found := components.Player.First(e.World)
	if !found {
		return 0, 0, false
	}
	world, _, _, found := getWorld(e)
	if !found {
		return 0, 0, false
	}
	x, y = world.ToWorld(components.Object.Get(playerEntry).Center())
	return x, y, true
}
