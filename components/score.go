package components

import (
	"github.com/automoto/suzujump/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScoreData is the altitude score of the current run (singleton component).
type ScoreData struct {
	gamemath.ScoreTracker

	// HUD pop when the score increments
	Pop      *gween.Tween
	PopScale float32
}

var Score = donburi.NewComponentType[ScoreData]()
