// suzujump is an endless jumper: a cat climbs procedurally placed platforms
// and scores a point for every new height it stands on.
//
// Usage:
//
//	suzujump [--seed N] [--debug] [--fullscreen] [--config tuning.yaml]
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/fonts"
	"github.com/automoto/suzujump/scenes"
	"github.com/automoto/suzujump/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagSeed       int64
	flagDebug      bool
	flagFullscreen bool
	flagConfig     string
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
	log.Debug("scene changed", "scene", fmt.Sprintf("%T", scene))
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewStartScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "suzujump",
	Short: "Suzu Jump Simulator - help the cat climb as high as it can",
	Long: `Suzu Jump Simulator is an endless jumper. Jump from platform to
platform; every new height you stand on scores a point.

Controls:
  A/D or Left/Right  - Move
  Space/W/Up         - Jump
  Esc                - Back to the start screen
  F3                 - Debug overlay

Examples:
  suzujump
  suzujump --seed 42
  suzujump --config ./tuning.yaml --debug`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Platform layout seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show collision boxes and debug logging")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}

	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return err
		}
		log.Warn("ignoring tuning file", "err", err)
	}
	config.ApplyTuning(tuning)
	if cmd.Flags().Changed("seed") {
		config.Generator.Seed = flagSeed
	}
	config.Debug.Enabled = flagDebug
	systems.SetVolumes(config.Audio.DefaultMusicVol, config.Audio.DefaultSFXVol)

	if err := fonts.LoadDefaults(map[fonts.FontName]float64{
		fonts.Title:    config.Start.TitleSize,
		fonts.Prompt:   config.Start.PromptSize,
		fonts.Controls: config.Start.ControlsSize,
		fonts.Score:    config.HUD.ScoreSize,
		fonts.Debug:    config.HUD.DebugFontSize,
	}); err != nil {
		return err
	}

	ebiten.SetWindowTitle(config.Start.Title)
	ebiten.SetWindowSize(config.C.Width/2, config.C.Height/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn("could not load settings", "err", err)
	}
	systems.ApplySavedSettings(saved)
	if flagFullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Info("starting", "seed", config.Generator.Seed, "best", systems.BestScore())
	return ebiten.RunGame(NewGame())
}
