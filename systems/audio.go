package systems

import (
	"sync"

	"github.com/automoto/suzujump/assets"
	"github.com/automoto/suzujump/components"
	cfg "github.com/automoto/suzujump/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes all sound effects ahead of their first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, key := range cfg.Sound.SFXKeys {
		if err := globalAudioLoader.PreloadSFX(key); err != nil {
			log.Warn("could not preload sfx", "key", key, "err", err)
		}
	}
}

// UpdateAudio plays the sound effects queued this frame
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	volume := effectiveSFXVolume()
	if volume <= 0 {
		return
	}

	key, ok := cfg.Sound.SFXKeys[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(key)
	if err != nil {
		log.Warn("could not play sfx", "key", key, "err", err)
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts looping the given track, replacing whatever was playing
func PlayMusic(key string) {
	initGlobalAudio()

	if globalMusicKey == key && globalMusicPlayer != nil {
		return
	}
	StopMusic()

	player, err := globalAudioLoader.LoadMusic(key)
	if err != nil {
		log.Warn("could not start music", "key", key, "err", err)
		return
	}

	player.SetVolume(effectiveMusicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = key
}

// StopMusic immediately stops and releases the current music. Safe to call
// when nothing is playing.
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusicKey = ""
}

// CurrentMusic returns the key of the playing track, or "" when silent.
func CurrentMusic() string {
	return globalMusicKey
}

// PlaySFX queues a sound effect for UpdateAudio
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMuted silences or restores both channels.
func SetMuted(muted bool) {
	globalMuted = muted
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
}

// IsMuted reports whether audio is silenced.
func IsMuted() bool {
	return globalMuted
}

// SetVolumes sets the unmuted music and SFX volumes (0.0 - 1.0)
func SetVolumes(music, sfx float64) {
	globalMusicVolume = music
	globalSFXVolume = sfx
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
}

func effectiveMusicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

func effectiveSFXVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
