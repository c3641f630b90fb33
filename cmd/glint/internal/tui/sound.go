package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// Chime plays a short sine tone on toggle. A nil Chime is silent, so the
// app can carry one unconditionally and only construct it when audio is
// both requested and available.
type Chime struct{}

// NewChime opens the speaker.
func NewChime() (*Chime, error) {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Chime{}, nil
}

// Play fires the tone without blocking.
func (c *Chime) Play() {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(chimeSampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeSampleRate.N(50*time.Millisecond), sine))
}

// Close shuts the speaker down.
func (c *Chime) Close() {
	if c == nil {
		return
	}
	speaker.Close()
}
