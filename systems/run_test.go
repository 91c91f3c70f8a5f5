package systems

import (
	"math"
	"testing"

	"github.com/automoto/suzujump/assets"
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func TestNewRunStartsFresh(t *testing.T) {
	e := newTestRun(t)

	total, ground := countPlatforms(e)
	if ground != 1 {
		t.Fatalf("ground platforms = %d, want 1", ground)
	}
	if total-ground != cfg.Generator.InitialBatch {
		t.Fatalf("generated platforms = %d, want %d", total-ground, cfg.Generator.InitialBatch)
	}
	if got := CurrentScore(e); got != 0 {
		t.Fatalf("score = %d, want 0", got)
	}

	px, py, ok := playerWorldPos(e)
	if !ok {
		t.Fatal("no player position")
	}
	spawn := assets.MustLoadStartLayout().Spawn
	if px != cfg.StartX()+spawn.X || py != cfg.StartY()+spawn.Y {
		t.Fatalf("player spawned at %v,%v", px, py)
	}
}

func TestSettlingOnGroundScoresOnce(t *testing.T) {
	e := newTestRun(t)
	settle(t, e)

	// The cat rests above the ground centre, which is the starting watermark.
	_, py, _ := playerWorldPos(e)
	if py >= cfg.StartY() {
		t.Fatalf("resting y = %v, want above ground centre %v", py, cfg.StartY())
	}
	if got := CurrentScore(e); got != 1 {
		t.Fatalf("score after settling = %d, want 1", got)
	}

	for i := 0; i < 30; i++ {
		step(e)
	}
	if got := CurrentScore(e); got != 1 {
		t.Fatalf("score while resting = %d, want 1", got)
	}
	if !grounded(t, e) {
		t.Fatal("player should keep resting on the ground")
	}
}

func TestLandingOnHigherPlatformScoresOnce(t *testing.T) {
	e := newTestRun(t)
	settle(t, e)
	world, gen, _, _ := getWorld(e)

	// The first generated platform is the lowest one above the ground.
	var target *components.ObjectData
	var targetY float64
	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		if components.Platform.Get(entry).IsGround {
			return
		}
		obj := components.Object.Get(entry)
		_, wy := world.ToWorld(obj.Center())
		if target == nil || wy > targetY {
			target, targetY = obj, wy
		}
	})
	if target == nil {
		t.Fatal("no generated platform")
	}
	if gen.Count() != cfg.Generator.InitialBatch {
		t.Fatalf("generator count = %d", gen.Count())
	}

	// Stand the cat on top of it.
	cx, _ := world.ToWorld(target.Center())
	_, topY := world.ToWorld(target.X, target.Y)
	movePlayerTo(t, e, cx, topY-float64(cfg.Player.CollisionHeight)/2)

	step(e)
	if !grounded(t, e) {
		t.Fatal("player did not land on the platform")
	}
	if got := CurrentScore(e); got != 2 {
		t.Fatalf("score after landing higher = %d, want 2", got)
	}

	for i := 0; i < 10; i++ {
		step(e)
	}
	if got := CurrentScore(e); got != 2 {
		t.Fatalf("score while standing still = %d, want 2", got)
	}
}

func TestJumpQueuesSoundAndLeavesGround(t *testing.T) {
	e := newTestRun(t)
	settle(t, e)

	press(e, cfg.ActionJump)
	UpdatePlayer(e)

	entry := playerEntry(t, e)
	physics := components.Physics.Get(entry)
	if physics.SpeedY != -cfg.Player.JumpSpeed {
		t.Fatalf("SpeedY = %v, want %v", physics.SpeedY, -cfg.Player.JumpSpeed)
	}
	if physics.OnGround != nil {
		t.Fatal("still grounded after jump")
	}
	if components.Player.Get(entry).Jumps != 1 {
		t.Fatal("jump not counted")
	}
	if !entry.HasComponent(components.SquashStretch) {
		t.Fatal("jump did not stretch the sprite")
	}

	pending := GetOrCreateAudio(e).PendingSFX
	if len(pending) != 1 || pending[0] != cfg.SoundJump {
		t.Fatalf("pending sfx = %v, want [SoundJump]", pending)
	}

	// Holding the key does not jump again.
	input := getOrCreateInput(e)
	input.Previous = input.Current
	physics.OnGround = &resolv.Object{}
	UpdatePlayer(e)
	if components.Player.Get(entry).Jumps != 1 {
		t.Fatal("held jump key jumped twice")
	}
}

func TestAirborneJumpIgnored(t *testing.T) {
	e := newTestRun(t)

	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	if components.Player.Get(playerEntry(t, e)).Jumps != 0 {
		t.Fatal("jumped in mid-air")
	}
	if len(GetOrCreateAudio(e).PendingSFX) != 0 {
		t.Fatal("mid-air jump queued a sound")
	}
}

func TestHorizontalMovement(t *testing.T) {
	e := newTestRun(t)
	settle(t, e)
	x0, _, _ := playerWorldPos(e)

	press(e, cfg.ActionMoveLeft)
	step(e)
	x1, _, _ := playerWorldPos(e)
	if x1 != x0-cfg.Player.MoveSpeed {
		t.Fatalf("moved to %v, want %v", x1, x0-cfg.Player.MoveSpeed)
	}
	if components.Player.Get(playerEntry(t, e)).Direction.X != cfg.DirectionLeft {
		t.Fatal("facing did not follow input")
	}

	press(e, cfg.ActionMoveRight)
	step(e)
	x2, _, _ := playerWorldPos(e)
	if x2 != x1 {
		t.Fatalf("opposite keys moved the player to %v", x2)
	}

	release(e, cfg.ActionMoveLeft)
	release(e, cfg.ActionMoveRight)
}

func TestCleanupRemovesPlatformsBelowPlayer(t *testing.T) {
	e := newTestRun(t)
	world, gen, _, _ := getWorld(e)

	// Park the player well above the ground, beside the highest platform.
	last := gen.Last()
	movePlayerTo(t, e, last.X, last.Y+float64(cfg.C.Height))
	_, py, _ := playerWorldPos(e)

	var doomed []*resolv.Object
	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if _, y := world.ToWorld(obj.Center()); gamemath.OffscreenBelow(y, py, float64(cfg.C.Height)) {
			doomed = append(doomed, obj.Object)
		}
	})
	if len(doomed) == 0 {
		t.Fatal("setup: nothing below the player")
	}

	UpdateCleanup(e)

	_, ground := countPlatforms(e)
	if ground != 0 {
		t.Fatal("ground survived cleanup")
	}
	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		_, y := world.ToWorld(components.Object.Get(entry).Center())
		if gamemath.OffscreenBelow(y, py, float64(cfg.C.Height)) {
			t.Errorf("platform at y=%v survived cleanup", y)
		}
	})
	for _, obj := range doomed {
		if obj.Space != nil {
			t.Error("removed platform still in the collision space")
		}
	}
}

func TestGeneratorRefillsBatch(t *testing.T) {
	e := newTestRun(t)
	_, gen, _, _ := getWorld(e)
	before, _ := countPlatforms(e)

	last := gen.Last()
	movePlayerTo(t, e, last.X, last.Y+cfg.Generator.RefillDistance/2)
	UpdateGenerator(e)

	after, _ := countPlatforms(e)
	if after-before != cfg.Generator.RefillBatch {
		t.Fatalf("refill added %d platforms, want %d", after-before, cfg.Generator.RefillBatch)
	}

	UpdateGenerator(e)
	again, _ := countPlatforms(e)
	if again != after {
		t.Fatalf("second update added %d more platforms", again-after)
	}
}

func TestRebasePreservesWorldPositions(t *testing.T) {
	e := newTestRun(t)
	world, _, _, _ := getWorld(e)

	// Lift the player right past the rebase line.
	entry := playerEntry(t, e)
	px, _ := components.Object.Get(entry).Center()
	components.Object.Get(entry).SetCenter(px, cfg.World.RebaseAbove-10)
	UpdateCamera(e)

	type pos struct{ x, y float64 }
	before := map[donburi.Entity]pos{}
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		x, y := world.ToWorld(components.Object.Get(entry).Center())
		before[entry.Entity()] = pos{x, y}
	})
	offsetBefore := world.Origin.OffsetY

	UpdateOrigin(e)

	if world.Rebases != 1 {
		t.Fatalf("rebases = %d, want 1", world.Rebases)
	}
	if world.Origin.OffsetY != offsetBefore+cfg.World.RebaseShift {
		t.Fatalf("offset = %v, want %v", world.Origin.OffsetY, offsetBefore+cfg.World.RebaseShift)
	}
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		x, y := world.ToWorld(components.Object.Get(entry).Center())
		if want := before[entry.Entity()]; math.Abs(x-want.x) > 1e-6 || math.Abs(y-want.y) > 1e-6 {
			t.Errorf("entity moved in world space: %v,%v -> %v,%v", want.x, want.y, x, y)
		}
	})
	if _, ly := components.Object.Get(entry).Center(); ly < cfg.World.RebaseAbove {
		t.Fatalf("player local y %v still above the rebase line", ly)
	}

	// The camera moves with the world so the view does not jump.
	UpdateCamera(e)
	cam, _ := components.Camera.First(e.World)
	_, ly := components.Object.Get(entry).Center()
	if components.Camera.Get(cam).Position.Y != ly {
		t.Fatal("camera not following the player after rebase")
	}
}

func TestStateFollowsMotion(t *testing.T) {
	e := newTestRun(t)
	settle(t, e)
	step(e)

	state := func() cfg.StateID {
		return components.State.Get(playerEntry(t, e)).CurrentState
	}
	if state() != cfg.Idle {
		t.Fatalf("resting state = %v, want Idle", state())
	}

	press(e, cfg.ActionMoveRight)
	step(e)
	if state() != cfg.Running {
		t.Fatalf("moving state = %v, want Running", state())
	}
	release(e, cfg.ActionMoveRight)

	press(e, cfg.ActionJump)
	step(e)
	if state() != cfg.Jump {
		t.Fatalf("rising state = %v, want Jump", state())
	}
	release(e, cfg.ActionJump)

	for i := 0; i < 80 && state() != cfg.Fall; i++ {
		step(e)
	}
	if state() != cfg.Fall {
		t.Fatalf("state after apex = %v, want Fall", state())
	}
	if anim := components.Animation.Get(playerEntry(t, e)); anim.CurrentSheet != cfg.Fall {
		t.Fatalf("animation sheet = %v, want Fall", anim.CurrentSheet)
	}
}
