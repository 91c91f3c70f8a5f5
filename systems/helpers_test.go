package systems

import (
	"testing"

	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeSceneChanger struct {
	scenes []interface{}
}

func (f *fakeSceneChanger) ChangeScene(scene interface{}) {
	f.scenes = append(f.scenes, scene)
}

func newTestRun(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	NewRun(e, 42)
	return e
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.Player.First(e.World)
	if !ok {
		t.Fatal("no player")
	}
	return entry
}

// movePlayerTo puts the player's centre at a world position and clears its motion.
func movePlayerTo(t *testing.T, e *ecs.ECS, x, y float64) {
	t.Helper()
	world, _, _, _ := getWorld(e)
	entry := playerEntry(t, e)
	lx, ly := world.ToLocal(x, y)
	components.Object.Get(entry).SetCenter(lx, ly)
	physics := components.Physics.Get(entry)
	physics.SpeedX, physics.SpeedY = 0, 0
}

// press marks an action as pressed this frame and released the last.
func press(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Current[action] = true
	input.Previous[action] = false
}

func release(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Current[action] = false
	input.Previous[action] = false
}

func step(e *ecs.ECS) {
	UpdatePlayer(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	UpdateStates(e)
	UpdateEffects(e)
	UpdateOrigin(e)
	UpdateGenerator(e)
	UpdateCleanup(e)
	UpdateScore(e)
	UpdateCamera(e)
}

func countPlatforms(e *ecs.ECS) (total, ground int) {
	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		total++
		if components.Platform.Get(entry).IsGround {
			ground++
		}
	})
	return total, ground
}

func grounded(t *testing.T, e *ecs.ECS) bool {
	t.Helper()
	return components.Physics.Get(playerEntry(t, e)).OnGround != nil
}

func settle(t *testing.T, e *ecs.ECS) {
	t.Helper()
	for i := 0; i < 120 && !grounded(t, e); i++ {
		step(e)
	}
	if !grounded(t, e) {
		t.Fatal("player never landed")
	}
}
