package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// StartScreenData drives the start screen (singleton component).
type StartScreenData struct {
	TitlePulse *gween.Sequence
	TitleScale float32
	BestScore  int
	LastScore  int
}

var StartScreen = donburi.NewComponentType[StartScreenData]()
