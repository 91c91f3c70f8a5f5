package components

import (
	cfg "github.com/automoto/suzujump/config"
	"github.com/yohamta/donburi"
)

// AudioData is the per-scene queue of sound effects (singleton component).
// Players and the mixer live in the systems package and outlive scenes.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
