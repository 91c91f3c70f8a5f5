package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/suzujump/assets"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// JumperScene is one run: climb until the cat falls or Escape is pressed.
type JumperScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewJumperScene(sc SceneChanger) *JumperScene {
	return &JumperScene{sceneChanger: sc}
}

func (js *JumperScene) Update() {
	js.once.Do(js.configure)
	js.ecs.Update()
}

func (js *JumperScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if js.ecs == nil {
		return
	}
	js.ecs.Draw(screen)
}

func (js *JumperScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	if err := assets.LoadShaders(); err != nil {
		log.Warn("sky shader unavailable, using flat background", "err", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	createStartScene := func(lastScore int) interface{} {
		return NewStartSceneAfterRun(js.sceneChanger, lastScore)
	}

	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateStates)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateOrigin)
	e.AddSystem(systems.UpdateGenerator)
	e.AddSystem(systems.UpdateCleanup)
	e.AddSystem(systems.UpdateScore)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.NewUpdateRun(js.sceneChanger, createStartScene))

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawPlatforms)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	js.ecs = e

	systems.NewRun(e, cfg.Generator.Seed)

	music := assets.MustLoadStartLayout().Music
	if music == "" {
		music = cfg.Sound.BackgroundMusic
	}
	systems.PlayMusic(music)
}
