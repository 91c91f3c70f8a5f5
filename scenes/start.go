package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/systems"
	"github.com/automoto/suzujump/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// noLastScore marks a start screen shown before any run.
const noLastScore = -1

// StartScene waits for any key, then starts a run.
type StartScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     *ui.SettingsUI
	lastScore    int
	once         sync.Once
}

// NewStartScene creates the first screen of the game.
func NewStartScene(sc SceneChanger) *StartScene {
	return &StartScene{sceneChanger: sc, lastScore: noLastScore}
}

// NewStartSceneAfterRun creates the start screen shown when a run ends.
func NewStartSceneAfterRun(sc SceneChanger, lastScore int) *StartScene {
	return &StartScene{sceneChanger: sc, lastScore: lastScore}
}

func (ss *StartScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
	ss.settings.Update()
}

func (ss *StartScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
	ss.settings.Draw(screen)
}

func (ss *StartScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	createMainScene := func() interface{} {
		return NewJumperScene(ss.sceneChanger)
	}

	ss.ecs.AddSystem(systems.UpdateAudio)
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateStart(ss.sceneChanger, createMainScene))

	ss.ecs.AddRenderer(cfg.Default, systems.DrawStart)

	systems.SetupStartScreen(ss.ecs, ss.lastScore)

	ss.settings = ui.NewSettingsUI(systems.IsMuted(), ebiten.IsFullscreen(),
		func(muted bool) {
			systems.SetMuted(muted)
			saveSettings(muted, ebiten.IsFullscreen())
		},
		func(fullscreen bool) {
			ebiten.SetFullscreen(fullscreen)
			saveSettings(systems.IsMuted(), fullscreen)
		},
	)

	log.Debug("start screen", "lastScore", ss.lastScore, "best", systems.BestScore())
}

func saveSettings(muted, fullscreen bool) {
	if err := systems.SaveSettings(&systems.SavedSettings{Muted: muted, Fullscreen: fullscreen}); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}
