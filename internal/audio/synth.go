package audio

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappyball/internal/assets"
	"github.com/vovakirdan/flappyball/internal/core"
)

const (
	SampleRate     = 44100
	ChannelCount   = 2
	Format         = 0 // oto.FormatFloat32LE
	bytesPerSample = 8 // stereo float32
)

// generators maps catalog synth names to sample renderers.
var generators = map[string]func() []byte{
	"bounce": genBounce,
	"death":  genDeath,
	"music":  genMusic,
}

// Bank holds the rendered samples of every sound asset.
type Bank struct {
	samples map[core.Sound][]byte
	loop    map[core.Sound]bool
}

// Render produces the samples for every sound in the catalog.
// An unknown synth name is an asset load failure.
func Render(cat *assets.Catalog) (*Bank, error) {
	b := &Bank{
		samples: make(map[core.Sound][]byte),
		loop:    make(map[core.Sound]bool),
	}
	for _, s := range []core.Sound{core.SoundJump, core.SoundDeath, core.SoundMusic} {
		spec, ok := cat.Sound(s)
		if !ok {
			return nil, &assets.AssetLoadError{Key: s.String(), Err: fmt.Errorf("sound missing from catalog")}
		}
		gen, ok := generators[spec.Synth]
		if !ok {
			return nil, &assets.AssetLoadError{Key: s.String(), Err: fmt.Errorf("unknown synth %q", spec.Synth)}
		}
		b.samples[s] = gen()
		b.loop[s] = spec.Loop
	}
	return b, nil
}

// Duration returns the length of a rendered sound.
func (b *Bank) Duration(s core.Sound) float64 {
	return float64(len(b.samples[s])/bytesPerSample) / SampleRate
}

// putStereo writes a [-1,1] sample as float32 LE to both channels at frame i.
func putStereo(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		off := i*bytesPerSample + ch*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

// envelope is a linear attack/decay/sustain/release curve over progress in [0,1].
func envelope(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// saturate soft-clips into [-1,1].
func saturate(x float64) float64 {
	return math.Tanh(x)
}

func render(seconds float64, sample func(t, p float64) float64) []byte {
	n := int(seconds * SampleRate)
	buf := make([]byte, n*bytesPerSample)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		putStereo(buf, i, saturate(sample(t, p)))
	}
	return buf
}

// genBounce: short rising blip.
func genBounce() []byte {
	return render(0.12, func(t, p float64) float64 {
		freq := 380 + 520*p
		env := envelope(p, 0.02, 0.4, 0.3, 0.4)
		return math.Sin(2*math.Pi*freq*t) * env * 0.7
	})
}

// genDeath: falling tone with a low thud underneath.
func genDeath() []byte {
	return render(0.6, func(t, p float64) float64 {
		freq := 440 * math.Pow(0.25, p)
		env := envelope(p, 0.01, 0.3, 0.5, 0.5)
		s := math.Sin(2*math.Pi*freq*t) * env * 0.6
		s += math.Sin(2*math.Pi*55*t) * math.Exp(-t*8) * 0.4
		return s
	})
}

// musicNotes is a I-vi-IV-V arpeggio, two eighths per note.
var musicNotes = []float64{
	261.63, 329.63, 392.00, 329.63, // C
	220.00, 261.63, 329.63, 261.63, // Am
	174.61, 220.00, 261.63, 220.00, // F
	196.00, 246.94, 293.66, 246.94, // G
}

const musicNoteLen = 0.25

// genMusic: a gentle arpeggio loop.
func genMusic() []byte {
	total := float64(len(musicNotes)) * musicNoteLen
	return render(total, func(t, _ float64) float64 {
		idx := int(t / musicNoteLen)
		if idx >= len(musicNotes) {
			idx = len(musicNotes) - 1
		}
		local := (t - float64(idx)*musicNoteLen) / musicNoteLen
		freq := musicNotes[idx]
		env := envelope(local, 0.05, 0.3, 0.6, 0.3)
		s := math.Sin(2*math.Pi*freq*t) * env * 0.35
		s += math.Sin(2*math.Pi*freq/2*t) * 0.12 // bass drone an octave down
		return s
	})
}
