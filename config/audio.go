package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to asset keys understood by assets.AudioLoader
type SoundConfig struct {
	BackgroundMusic   string
	SFXKeys           map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.2,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		BackgroundMusic: "music/bgm",
		SFXKeys: map[SoundID]string{
			SoundJump: "sfx/jump",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundJump: 0.8,
		},
	}
}
