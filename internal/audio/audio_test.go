package audio

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/vovakirdan/flappyball/internal/assets"
	"github.com/vovakirdan/flappyball/internal/core"
)

func loadBank(t *testing.T) *Bank {
	t.Helper()
	cat, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() failed: %v", err)
	}
	bank, err := Render(cat)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	return bank
}

func TestRenderCatalogSounds(t *testing.T) {
	bank := loadBank(t)

	for _, s := range []core.Sound{core.SoundJump, core.SoundDeath, core.SoundMusic} {
		data := bank.samples[s]
		if len(data) == 0 {
			t.Errorf("%s: no samples rendered", s)
			continue
		}
		if len(data)%bytesPerSample != 0 {
			t.Errorf("%s: %d bytes is not a whole number of stereo frames", s, len(data))
		}

		for i := 0; i < len(data); i += 4 {
			v := math.Float32frombits(binary.LittleEndian.Uint32(data[i:]))
			if v < -1 || v > 1 || math.IsNaN(float64(v)) {
				t.Fatalf("%s: sample %d = %v, expected within [-1, 1]", s, i/4, v)
			}
		}
	}

	if !bank.loop[core.SoundMusic] {
		t.Error("music should loop")
	}
	if bank.loop[core.SoundJump] || bank.loop[core.SoundDeath] {
		t.Error("sound effects should not loop")
	}
	if d := bank.Duration(core.SoundJump); d < 0.1 || d > 0.2 {
		t.Errorf("jump duration = %.3fs, expected a short blip", d)
	}
	if d := bank.Duration(core.SoundMusic); d != 4 {
		t.Errorf("music duration = %.3fs, expected 4s", d)
	}
}

func TestRenderUnknownSynth(t *testing.T) {
	cat, err := assets.Parse([]byte(`
sprites:
  player: {width: 32, height: 32, glyph: "o"}
  obstacle: {width: 48, height: 48, glyph: "#"}
  background: {width: 1280, height: 720, glyph: " "}
sounds:
  jump: {synth: bounce}
  death: {synth: kazoo}
  music: {synth: music, loop: true}
`))
	if err != nil {
		t.Fatalf("assets.Parse() failed: %v", err)
	}

	_, err = Render(cat)
	var loadErr *assets.AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Render() error = %v, expected *assets.AssetLoadError", err)
	}
	if loadErr.Key != "death" {
		t.Errorf("AssetLoadError.Key = %q, expected \"death\"", loadErr.Key)
	}
}

func TestMixerWithoutDevice(t *testing.T) {
	m := newMixer(nil, nil, loadBank(t))

	// No context: Play must return without touching a device
	m.Play(core.SoundJump)
	m.Play(core.SoundMusic)
	if m.music != nil {
		t.Error("music should not start without a device")
	}

	if m.Volume(core.SoundDeath) != 1 {
		t.Errorf("unset volume = %v, expected 1", m.Volume(core.SoundDeath))
	}
	m.SetVolume(core.SoundDeath, 0.5)
	if m.Volume(core.SoundDeath) != 0.5 {
		t.Errorf("Volume() = %v, expected 0.5", m.Volume(core.SoundDeath))
	}
	m.SetVolume(core.SoundJump, 3)
	if m.Volume(core.SoundJump) != 1 {
		t.Errorf("volume should clamp to 1, got %v", m.Volume(core.SoundJump))
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() = %v, expected nil", err)
	}
}

func TestLoopReaderWraps(t *testing.T) {
	r := &loopReader{data: []byte{1, 2, 3}}
	buf := make([]byte, 7)

	n, err := r.Read(buf)
	if err != nil || n != 7 {
		t.Fatalf("Read() = %d, %v; expected 7, nil", n, err)
	}
	expected := []byte{1, 2, 3, 1, 2, 3, 1}
	for i := range expected {
		if buf[i] != expected[i] {
			t.Fatalf("Read() = %v, expected %v", buf, expected)
		}
	}

	n, _ = r.Read(buf[:2])
	if n != 2 || buf[0] != 2 || buf[1] != 3 {
		t.Errorf("second Read() = %v, expected to continue at 2", buf[:2])
	}
}

func TestSampleReaderEOF(t *testing.T) {
	r := &sampleReader{data: []byte{9, 8}}
	buf := make([]byte, 4)

	n, err := r.Read(buf)
	if n != 2 || err != nil {
		t.Fatalf("Read() = %d, %v; expected 2, nil", n, err)
	}
	if _, err := r.Read(buf); err != io.EOF {
		t.Errorf("Read() past end = %v, expected io.EOF", err)
	}
}
