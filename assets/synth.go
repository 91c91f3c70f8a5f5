package assets

import (
	"encoding/binary"
	"math"
)

// PCM produced here is what ebiten's audio players read: signed 16-bit
// little-endian, two interleaved channels.
const bytesPerFrame = 4

// synthesizers maps audio keys to their generators.
var synthesizers = map[string]func(sampleRate int) []byte{
	"sfx/jump":  SynthesizeJump,
	"music/bgm": SynthesizeMusic,
}

// SynthesizeJump renders a short rising chirp with a little bell on top.
func SynthesizeJump(sampleRate int) []byte {
	const duration = 0.18
	n := int(duration * float64(sampleRate))
	out := make([]byte, n*bytesPerFrame)

	phase, bell := 0.0, 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := 420 + 620*t*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		bell += 2 * math.Pi * 2637 / float64(sampleRate)

		env := math.Min(t*40, 1) * (1 - t)
		v := 0.55*math.Sin(phase)*env + 0.12*math.Sin(bell)*(1-t)*(1-t)
		putFrame(out, i, v)
	}
	return out
}

// melody is one pentatonic phrase in MIDI note numbers, one entry per
// eighth note; 0 is a rest.
var melody = []int{
	72, 76, 79, 76, 81, 79, 76, 74,
	72, 74, 76, 79, 76, 74, 72, 0,
	69, 72, 76, 72, 74, 76, 79, 81,
	79, 76, 74, 72, 74, 72, 69, 0,
}

// bassline holds one root per bar of four beats.
var bassline = []int{48, 45, 53, 55}

const musicBPM = 112

// SynthesizeMusic renders one seamless loop of the background tune.
func SynthesizeMusic(sampleRate int) []byte {
	eighth := 60.0 / musicBPM / 2
	samplesPerEighth := int(eighth * float64(sampleRate))
	n := samplesPerEighth * len(melody)
	out := make([]byte, n*bytesPerFrame)

	barLen := samplesPerEighth * 8
	for i := 0; i < n; i++ {
		step := i / samplesPerEighth
		inStep := float64(i%samplesPerEighth) / float64(samplesPerEighth)
		secs := float64(i) / float64(sampleRate)

		var v float64
		if note := melody[step]; note != 0 {
			env := math.Min(inStep*30, 1) * math.Exp(-3*inStep)
			v += 0.35 * triangle(secs*midiFreq(note)) * env
		}

		bar := (i / barLen) % len(bassline)
		inBeat := float64(i%(samplesPerEighth*2)) / float64(samplesPerEighth*2)
		v += 0.3 * math.Sin(2*math.Pi*secs*midiFreq(bassline[bar])) * math.Exp(-2.5*inBeat)

		putFrame(out, i, v)
	}
	return out
}

func midiFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// triangle is a unit triangle wave over one cycle per unit of x.
func triangle(x float64) float64 {
	f := x - math.Floor(x)
	return 4*math.Abs(f-0.5) - 1
}

func putFrame(out []byte, i int, v float64) {
	v = math.Max(-1, math.Min(1, v))
	s := uint16(int16(v * math.MaxInt16))
	binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], s)
	binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], s)
}
