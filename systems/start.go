package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var startDrawOp = &ebiten.DrawImageOptions{}

// SetupStartScreen creates the start screen singleton. lastScore is the
// score of the run that just ended, or -1 when none has been played.
func SetupStartScreen(e *ecs.ECS, lastScore int) *components.StartScreenData {
	entry, ok := components.StartScreen.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.StartScreen))
	}
	components.StartScreen.SetValue(entry, components.StartScreenData{
		TitlePulse: newTitlePulse(),
		TitleScale: 1,
		BestScore:  BestScore(),
		LastScore:  lastScore,
	})
	return components.StartScreen.Get(entry)
}

func newTitlePulse() *gween.Sequence {
	half := cfg.Start.PulseDuration / 2
	return gween.NewSequence(
		gween.New(1, cfg.Start.PulseScale, half, ease.InOutSine),
		gween.New(cfg.Start.PulseScale, 1, half, ease.InOutSine),
	)
}

// updateTitlePulse breathes the title in and out forever.
func updateTitlePulse(e *ecs.ECS) {
	entry, ok := components.StartScreen.First(e.World)
	if !ok {
		return
	}
	start := components.StartScreen.Get(entry)
	if start.TitlePulse == nil {
		return
	}
	scale, _, done := start.TitlePulse.Update(frameSeconds())
	start.TitleScale = scale
	if done {
		start.TitlePulse.Reset()
	}
}

// DrawStart renders the title, the prompt, the controls and the scores,
// centred on the screen.
func DrawStart(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Start.BackgroundColor)

	entry, ok := components.StartScreen.First(e.World)
	if !ok {
		return
	}
	start := components.StartScreen.Get(entry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float64(width)/2, float64(height)/2

	drawCentered(screen, cfg.Start.Title, fonts.Title.Get(), cx, cy+cfg.Start.TitleOffsetY, float64(start.TitleScale), cfg.Start.TitleColor)
	drawCentered(screen, cfg.Start.Prompt, fonts.Prompt.Get(), cx, cy+cfg.Start.PromptOffsetY, 1, cfg.Start.PromptColor)
	drawCentered(screen, cfg.Start.Controls, fonts.Controls.Get(), cx, cy+cfg.Start.ControlsOffsetY, 1, cfg.Start.ControlsColor)

	scores := fmt.Sprintf("Best: %d", start.BestScore)
	if start.LastScore >= 0 {
		scores = fmt.Sprintf("Last: %d | Best: %d", start.LastScore, start.BestScore)
	}
	drawCentered(screen, scores, fonts.Controls.Get(), cx, cy+cfg.Start.BestOffsetY, 1, cfg.Start.BestColor)
}

// drawCentered draws s with its baseline centred on (cx, y), scaled about that point.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y, scale float64, clr color.Color) {
	w := float64(fonts.Width(face, s))

	startDrawOp.GeoM.Reset()
	startDrawOp.ColorScale.Reset()
	startDrawOp.GeoM.Translate(-w/2, 0)
	startDrawOp.GeoM.Scale(scale, scale)
	startDrawOp.GeoM.Translate(cx, y)
	startDrawOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, startDrawOp)
}
