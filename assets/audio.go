package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches audio assets by key
type AudioLoader struct {
	pcmCache map[string][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		pcmCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PCM returns the cached samples for key, synthesizing them on first use.
func (l *AudioLoader) PCM(key string) ([]byte, error) {
	if pcm, ok := l.pcmCache[key]; ok {
		return pcm, nil
	}
	synth, ok := synthesizers[key]
	if !ok {
		return nil, fmt.Errorf("unknown audio key %q", key)
	}
	pcm := synth(l.context.SampleRate())
	l.pcmCache[key] = pcm
	return pcm, nil
}

// PreloadSFX renders a sound effect ahead of its first play.
// Synthesis is slow under WASM, so scenes call this while configuring.
func (l *AudioLoader) PreloadSFX(key string) error {
	_, err := l.PCM(key)
	return err
}

// LoadSFX returns a new one-shot player each time.
func (l *AudioLoader) LoadSFX(key string) (*audio.Player, error) {
	pcm, err := l.PCM(key)
	if err != nil {
		return nil, err
	}
	player, err := l.context.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return nil, fmt.Errorf("failed to create sfx player %s: %w", key, err)
	}
	return player, nil
}

// LoadMusic returns a player that loops the track forever.
func (l *AudioLoader) LoadMusic(key string) (*audio.Player, error) {
	pcm, err := l.PCM(key)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player %s: %w", key, err)
	}
	return player, nil
}
