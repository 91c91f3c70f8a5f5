package assets

import (
	"encoding/binary"
	"testing"
)

func TestSynthesizersProduceStereoPCM(t *testing.T) {
	for key, synth := range synthesizers {
		pcm := synth(44100)
		if len(pcm) == 0 || len(pcm)%bytesPerFrame != 0 {
			t.Fatalf("%s: %d bytes is not whole frames", key, len(pcm))
		}

		loud := false
		for i := 0; i < len(pcm); i += bytesPerFrame {
			l := binary.LittleEndian.Uint16(pcm[i:])
			r := binary.LittleEndian.Uint16(pcm[i+2:])
			if l != r {
				t.Fatalf("%s: channels differ at frame %d", key, i/bytesPerFrame)
			}
			if int16(l) > 1000 || int16(l) < -1000 {
				loud = true
			}
		}
		if !loud {
			t.Errorf("%s: rendered silence", key)
		}
	}
}

func TestMusicLoopLength(t *testing.T) {
	pcm := SynthesizeMusic(44100)
	var eighthSecs float64 = 60.0 / musicBPM / 2
	eighth := int(eighthSecs * 44100)
	if want := eighth * len(melody) * bytesPerFrame; len(pcm) != want {
		t.Fatalf("music is %d bytes, want %d", len(pcm), want)
	}
}
