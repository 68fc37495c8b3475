// Package audio renders the game's sound assets procedurally and plays them
// through an oto context. Sound effects are fire-and-forget; music loops.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/flappyball/internal/core"
)

// Mixer plays sounds from a Bank. It implements core.Audio.
type Mixer struct {
	ctx   *oto.Context
	ready chan struct{}
	bank  *Bank

	mu      sync.Mutex
	volumes map[core.Sound]float64
	music   oto.Player
	closed  bool
}

// Open creates the audio device context. The context becomes usable
// asynchronously; sounds requested before that are dropped.
func Open(bank *Bank) (*Mixer, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, Format)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open device: %w", err)
	}
	return newMixer(ctx, ready, bank), nil
}

func newMixer(ctx *oto.Context, ready chan struct{}, bank *Bank) *Mixer {
	return &Mixer{
		ctx:     ctx,
		ready:   ready,
		bank:    bank,
		volumes: make(map[core.Sound]float64),
	}
}

// SetVolume sets the level of a sound in [0, 1]. Applies to music immediately.
func (m *Mixer) SetVolume(s core.Sound, level float64) {
	level = clampVolume(level)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumes[s] = level
	if s == core.SoundMusic && m.music != nil {
		m.music.SetVolume(level)
	}
}

// Volume returns the level of a sound. Unset sounds play at full volume.
func (m *Mixer) Volume(s core.Sound) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.volumes[s]; ok {
		return v
	}
	return 1
}

// Play starts a sound without blocking. Effects requested before the device
// is ready are dropped; looping tracks start once it is.
func (m *Mixer) Play(s core.Sound) {
	if m.ctx == nil {
		return
	}
	data := m.bank.samples[s]
	if len(data) == 0 {
		return
	}
	if m.bank.loop[s] {
		if m.isReady() {
			m.startLoop(s, data)
			return
		}
		go func() {
			<-m.ready
			m.startLoop(s, data)
		}()
		return
	}
	if !m.isReady() {
		return
	}

	player := m.ctx.NewPlayer(&sampleReader{data: data})
	player.SetVolume(m.Volume(s))
	go func() {
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// startLoop starts the looping track unless it is already playing.
func (m *Mixer) startLoop(s core.Sound, data []byte) {
	volume := m.Volume(s)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.music != nil || m.closed {
		return
	}
	m.music = m.ctx.NewPlayer(&loopReader{data: data})
	m.music.SetVolume(volume)
	m.music.Play()
}

// Close stops the music. Nothing plays after Close.
func (m *Mixer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.music == nil {
		return nil
	}
	err := m.music.Close()
	m.music = nil
	return err
}

func (m *Mixer) isReady() bool {
	if m.ctx == nil {
		return false
	}
	select {
	case <-m.ready:
		return true
	default:
		return false
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// sampleReader streams a buffer once.
type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// loopReader streams a buffer forever, wrapping at the end.
type loopReader struct {
	data []byte
	pos  int
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.pos:])
		n += c
		r.pos = (r.pos + c) % len(r.data)
	}
	return n, nil
}

var _ core.Audio = (*Mixer)(nil)
