package app

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
	"github.com/vovakirdan/flappyball/internal/scene"
)

type nullCanvas struct{}

func (nullCanvas) Size() (int, int) { return 1280, 720 }
func (nullCanvas) Clear(core.Color) {}
func (nullCanvas) DrawSprite(core.Sprite, int, int) {}
func (nullCanvas) DrawText(core.Text, int, int) {}

type recordingAudio struct {
	played  []core.Sound
	volumes map[core.Sound]float64
	closed  bool
}

func newRecordingAudio() *recordingAudio {
	return &recordingAudio{volumes: make(map[core.Sound]float64)}
}

func (a *recordingAudio) Play(s core.Sound) { a.played = append(a.played, s) }
func (a *recordingAudio) SetVolume(s core.Sound, v float64) { a.volumes[s] = v }

func (a *recordingAudio) Close() error {
	a.closed = true
	return errors.New("device gone")
}

// stepScene logs the steps it receives and may run a hook on input.
type stepScene struct {
	name    string
	log     *[]string
	onInput func()
}

func (s *stepScene) PollInput(src core.EventSource) {
	src.Poll()
	*s.log = append(*s.log, s.name+".poll")
	if s.onInput != nil {
		s.onInput()
	}
}

func (s *stepScene) Update() { *s.log = append(*s.log, s.name+".update") }

func (s *stepScene) Render(core.Canvas) { *s.log = append(*s.log, s.name+".render") }

func newTestGame(audio core.Audio, queue *core.EventQueue) *Game {
	return NewGame(scene.Deps{Config: config.DefaultConfig(), Audio: audio}, queue, nullCanvas{})
}

func TestNewGameStartsMusicAtConfiguredVolumes(t *testing.T) {
	audio := newRecordingAudio()
	newTestGame(audio, core.NewEventQueue())

	expected := map[core.Sound]float64{
		core.SoundJump:  0.1,
		core.SoundDeath: 0.5,
		core.SoundMusic: 0.1,
	}
	for s, v := range expected {
		if audio.volumes[s] != v {
			t.Errorf("%s volume = %v, expected %v", s, audio.volumes[s], v)
		}
	}
	if len(audio.played) != 1 || audio.played[0] != core.SoundMusic {
		t.Errorf("played %v at boot, expected only music", audio.played)
	}
}

func TestFrameOrderFollowsSceneSwitches(t *testing.T) {
	g := newTestGame(nil, core.NewEventQueue())

	var steps []string
	m := g.Manager()
	m.Initialize(map[scene.Name]scene.Scene{
		"a": &stepScene{name: "a", log: &steps, onInput: func() { m.SetScene("b") }},
		"b": &stepScene{name: "b", log: &steps},
	}, "a")

	if !g.Frame() {
		t.Fatal("Frame() = false, expected the loop to continue")
	}

	expected := []string{"a.poll", "b.update", "b.render"}
	if len(steps) != len(expected) {
		t.Fatalf("steps = %v, expected %v", steps, expected)
	}
	for i := range expected {
		if steps[i] != expected[i] {
			t.Errorf("steps = %v, expected %v", steps, expected)
			break
		}
	}
	if g.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", g.Frames())
	}
}

func TestFrameStopsAfterQuit(t *testing.T) {
	queue := core.NewEventQueue()
	g := newTestGame(nil, queue)

	if !g.Frame() {
		t.Fatal("first frame reported quit")
	}

	queue.Push(core.QuitEvent())
	if g.Frame() {
		t.Error("Frame() = true after a quit event, expected false")
	}
	if !g.Manager().QuitRequested() {
		t.Error("quit flag not raised")
	}
}

func TestFullRunThroughScenes(t *testing.T) {
	queue := core.NewEventQueue()
	g := newTestGame(newRecordingAudio(), queue)
	m := g.Manager()

	queue.Push(core.KeyEvent(core.KeySpace))
	g.Frame()
	if m.CurrentName() != scene.NameMain {
		t.Fatalf("after space on start: %q, expected %q", m.CurrentName(), scene.NameMain)
	}

	run := m.Current().(*scene.Main)
	run.Player.Y = 721
	g.Frame()
	if m.CurrentName() != scene.NameDeath {
		t.Fatalf("after falling: %q, expected %q", m.CurrentName(), scene.NameDeath)
	}

	queue.Push(core.KeyEvent(core.KeySpace))
	g.Frame()
	if m.CurrentName() != scene.NameMain || m.Current() == scene.Scene(run) {
		t.Error("space on death should start a fresh main scene")
	}
}

func TestCloseReleasesAudio(t *testing.T) {
	audio := newRecordingAudio()
	g := newTestGame(audio, core.NewEventQueue())

	err := g.Close()

	if !audio.closed {
		t.Error("Close() did not close the audio backend")
	}
	if err == nil || err.Error() != "device gone" {
		t.Errorf("Close() = %v, expected the backend error", err)
	}
}

func TestCloseWithoutCloser(t *testing.T) {
	g := newTestGame(nil, core.NewEventQueue())

	if err := g.Close(); err != nil {
		t.Errorf("Close() = %v, expected nil", err)
	}
}
