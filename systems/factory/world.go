package factory

import (
	"github.com/automoto/suzujump/archetypes"
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld adds the run bookkeeping entity: floating origin, platform
// generator seeded at the world point (seedX, seedY), and a zeroed score
// whose watermark starts at watermarkY.
func CreateWorld(ecs *ecs.ECS, seed int64, seedX, seedY, watermarkY float64) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)

	components.World.SetValue(world, components.WorldData{
		Origin: gamemath.FloatingOrigin{
			OffsetX: cfg.World.InitialOffsetX,
			OffsetY: cfg.World.InitialOffsetY,
		},
	})

	params := gamemath.GeneratorParams{
		ScreenWidth:    float64(cfg.C.Width),
		MaxXOffset:     cfg.Generator.MaxXOffset,
		MinYGap:        cfg.Generator.MinYGap,
		MaxYGap:        cfg.Generator.MaxYGap,
		EdgeMargin:     cfg.Generator.EdgeMargin,
		RefillDistance: cfg.Generator.RefillDistance,
	}
	components.Generator.SetValue(world, components.GeneratorData{
		PlatformGenerator: gamemath.NewPlatformGenerator(params, gamemath.NewSeededRand(seed), seedX, seedY),
		Seed:              seed,
	})

	components.Score.SetValue(world, components.ScoreData{
		ScoreTracker: gamemath.NewScoreTracker(watermarkY),
		PopScale:     1,
	})

	return world
}
