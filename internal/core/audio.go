package core

// Sound identifies one of the sound assets.
type Sound int

const (
	SoundJump Sound = iota
	SoundDeath
	SoundMusic
)

// String returns the asset key of the sound.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundDeath:
		return "death"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Audio plays sounds. Play never blocks; music keeps looping once started.
type Audio interface {
	Play(s Sound)
	SetVolume(s Sound, level float64)
}

// NopAudio discards every call. Used when muted or without a sound device.
type NopAudio struct{}

func (NopAudio) Play(Sound) {}

func (NopAudio) SetVolume(Sound, float64) {}
