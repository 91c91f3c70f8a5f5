package systems

import (
	"fmt"

	cfg "github.com/automoto/suzujump/config"
	"github.com/automoto/suzujump/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the score in the top-left corner. The text grows briefly
// each time the score goes up.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	_, _, score, ok := getWorld(ecs)
	if !ok {
		return
	}

	face := fonts.Score.Get()
	label := fmt.Sprintf("Score: %d", score.Score)
	ascent := float64(face.Metrics().Ascent.Ceil())

	scale := float64(score.PopScale)
	if scale <= 0 {
		scale = 1
	}

	// Scale about the top-left corner of the label, then drop to the baseline.
	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(0, ascent)
	hudDrawOp.GeoM.Scale(scale, scale)
	hudDrawOp.GeoM.Translate(cfg.HUD.ScoreX, cfg.HUD.ScoreY)
	hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.ScoreColor)
	text.DrawWithOptions(screen, label, face, hudDrawOp)
}
