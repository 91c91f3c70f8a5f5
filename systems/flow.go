package systems

import (
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/gamemath"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// RunEnd says why a run finished.
type RunEnd int

const (
	RunQuit RunEnd = iota
	RunFell
)

func (r RunEnd) String() string {
	if r == RunFell {
		return "fell"
	}
	return "quit"
}

// NewUpdateRun creates the system that ends a run, on Escape or when the
// player drops past the death line. Either way the music stops, the score
// is recorded and the scene returned by createStartScene takes over.
func NewUpdateRun(sceneChanger SceneChanger, createStartScene func(lastScore int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		end := RunQuit
		switch {
		case GetAction(input, cfg.ActionQuit).JustPressed:
		case playerHasFallen(e):
			end = RunFell
		default:
			return
		}

		score := CurrentScore(e)
		jumps := 0
		if playerEntry, ok := components.Player.First(e.World); ok {
			jumps = components.Player.Get(playerEntry).Jumps
		}

		StopMusic()
		best := RecordScore(score)
		log.Info("run over", "reason", end, "score", score, "best", best, "jumps", jumps)

		sceneChanger.ChangeScene(createStartScene(score))
	}
}

func playerHasFallen(e *ecs.ECS) bool {
	_, py, ok := playerWorldPos(e)
	return ok && gamemath.HasFallen(py, cfg.DeathY())
}

// NewUpdateStart creates the start screen system: any key, Escape
// included, begins a run.
func NewUpdateStart(sceneChanger SceneChanger, createMainScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		updateTitlePulse(e)

		if !getOrCreateInput(e).AnyJustPressed {
			return
		}
		sceneChanger.ChangeScene(createMainScene())
	}
}
