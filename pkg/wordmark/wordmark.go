// Package wordmark sequences the character-by-character reveal of a display
// name and the caret that advances alongside it.
//
// The schedule is pure: [Sequencer.Frame] maps elapsed time to the visual
// state of every character and the caret, with no side effects, so the whole
// choreography is testable without a rendering surface. A thin live layer
// ([Sequencer.Start], [Sequencer.Replay]) drives frames from the animation
// clock for hosts that want callbacks instead of polling.
package wordmark

import (
	"fmt"
	"time"

	"github.com/glint-ui/glint/pkg/animation"
	"github.com/glint-ui/glint/pkg/timeline"
)

// Motion selects the easing preset for character reveals.
type Motion int

const (
	// MotionExpo reveals with ease-out-expo: hard deceleration, no overshoot.
	MotionExpo Motion = iota
	// MotionSpring reveals with the stiffness-70/damping-15 spring:
	// underdamped, a small single overshoot before settling.
	MotionSpring
)

// CaretBeforeFirst is the caret position before any character has revealed.
const CaretBeforeFirst = -1

// Config carries the wordmark text and its timing parameters.
type Config struct {
	// Text is the display string. Immutable once a run starts.
	Text string
	// InitialDelay postpones the first character's reveal.
	InitialDelay time.Duration
	// StaggerDelay separates consecutive character reveals.
	StaggerDelay time.Duration
	// CharDuration is each character's rise-and-fade-in length.
	CharDuration time.Duration
	// SettleDelay is how long the caret lingers after the last character
	// finishes before retiring.
	SettleDelay time.Duration
	// BlinkPeriod is the caret's on/off cadence while not retired.
	BlinkPeriod time.Duration
	// RiseOffset is the vertical distance characters travel while revealing.
	RiseOffset float64
	// Motion picks the easing preset.
	Motion Motion
	// ReducedMotion renders end states immediately, skipping all transforms.
	ReducedMotion bool
}

// DefaultConfig returns the source timing: 300ms initial delay, 150ms
// stagger, 500ms per character, 1000ms settle, 530ms blink, 8-unit rise.
func DefaultConfig(text string) Config {
	return Config{
		Text:         text,
		InitialDelay: 300 * time.Millisecond,
		StaggerDelay: 150 * time.Millisecond,
		CharDuration: 500 * time.Millisecond,
		SettleDelay:  1000 * time.Millisecond,
		BlinkPeriod:  530 * time.Millisecond,
		RiseOffset:   8,
		Motion:       MotionExpo,
	}
}

// CharState is one character's visual state at an instant.
type CharState struct {
	Rune     rune
	Opacity  float64
	Offset   float64
	Revealed bool
}

// CaretState is the caret's visual state at an instant.
//
// Position is CaretBeforeFirst until the first reveal, then the index of the
// latest revealed character; it is monotonically non-decreasing until the
// caret retires. Visible folds together the blink phase and retirement.
type CaretState struct {
	Position int
	Visible  bool
	Retired  bool
}

// Frame is the full wordmark snapshot at an instant.
type Frame struct {
	Chars []CharState
	Caret CaretState
}

// Sequencer owns the reveal schedule for one wordmark.
type Sequencer struct {
	// OnFrame receives live frames between Start/Replay and retirement.
	OnFrame func(Frame)

	cfg    Config
	runes  []rune
	tl     *timeline.Timeline
	ticker *animation.Ticker
}

// New builds a sequencer from the config.
func New(cfg Config) *Sequencer {
	s := &Sequencer{
		cfg:   cfg,
		runes: []rune(cfg.Text),
	}
	s.tl = s.buildTimeline()
	return s
}

// Config returns the sequencer's configuration.
func (s *Sequencer) Config() Config { return s.cfg }

// Timeline returns the reveal schedule as declarative steps, one opacity and
// one offset track per character.
func (s *Sequencer) Timeline() *timeline.Timeline { return s.tl }

func (s *Sequencer) buildTimeline() *timeline.Timeline {
	curve := animation.EaseOutExpo
	if s.cfg.Motion == MotionSpring {
		curve = animation.SpringCurve(animation.RevealSpring())
	}

	tl := timeline.New()
	tl.Append(timeline.Stagger(timeline.Step{
		Track:    "char%d.opacity",
		Start:    s.cfg.InitialDelay,
		Duration: s.cfg.CharDuration,
		From:     0,
		To:       1,
		Curve:    curve,
	}, len(s.runes), s.cfg.StaggerDelay)...)
	tl.Append(timeline.Stagger(timeline.Step{
		Track:    "char%d.offset",
		Start:    s.cfg.InitialDelay,
		Duration: s.cfg.CharDuration,
		From:     s.cfg.RiseOffset,
		To:       0,
		Curve:    curve,
	}, len(s.runes), s.cfg.StaggerDelay)...)

	if s.cfg.ReducedMotion {
		return tl.Instant()
	}
	return tl
}

// RevealTime returns when character i begins revealing.
func (s *Sequencer) RevealTime(i int) time.Duration {
	if s.cfg.ReducedMotion {
		return 0
	}
	return s.cfg.InitialDelay + time.Duration(i)*s.cfg.StaggerDelay
}

// RetireTime returns when the caret retires: the last character's reveal
// completion plus the settle delay. Zero-length text retires immediately.
func (s *Sequencer) RetireTime() time.Duration {
	if len(s.runes) == 0 || s.cfg.ReducedMotion {
		return 0
	}
	return s.RevealTime(len(s.runes)-1) + s.cfg.CharDuration + s.cfg.SettleDelay
}

// Frame returns the wordmark's visual state at the given elapsed time.
func (s *Sequencer) Frame(elapsed time.Duration) Frame {
	if elapsed < 0 {
		elapsed = 0
	}

	frame := Frame{
		Chars: make([]CharState, len(s.runes)),
		Caret: CaretState{Position: CaretBeforeFirst},
	}

	// Empty text: nothing is scheduled and the caret never appears.
	if len(s.runes) == 0 {
		frame.Caret.Retired = true
		return frame
	}

	for i, r := range s.runes {
		opacity, _ := s.tl.Value(fmt.Sprintf("char%d.opacity", i), elapsed)
		offset, _ := s.tl.Value(fmt.Sprintf("char%d.offset", i), elapsed)
		frame.Chars[i] = CharState{
			Rune:     r,
			Opacity:  opacity,
			Offset:   offset,
			Revealed: elapsed >= s.RevealTime(i),
		}
		if frame.Chars[i].Revealed {
			frame.Caret.Position = i
		}
	}

	if elapsed >= s.RetireTime() {
		frame.Caret.Retired = true
		return frame
	}
	frame.Caret.Visible = s.blinkOn(elapsed)
	return frame
}

// blinkOn alternates each BlinkPeriod, starting visible.
func (s *Sequencer) blinkOn(elapsed time.Duration) bool {
	if s.cfg.BlinkPeriod <= 0 {
		return true
	}
	return (elapsed/s.cfg.BlinkPeriod)%2 == 0
}

// Start begins live playback from time zero. The sequencer owns at most one
// ticker; any previous run is cancelled first.
func (s *Sequencer) Start() {
	s.Stop()

	if len(s.runes) == 0 || s.cfg.ReducedMotion {
		s.emit(s.Frame(s.RetireTime()))
		return
	}

	retireAt := s.RetireTime()
	s.ticker = animation.NewTicker(func(elapsed time.Duration) {
		s.emit(s.Frame(elapsed))
		if elapsed >= retireAt {
			s.Stop()
		}
	})
	s.ticker.Start()
}

// Replay cancels any pending animation, resets every character to its
// initial visual state, and restarts the schedule from time zero. Safe to
// call mid-animation; it never double-schedules.
func (s *Sequencer) Replay() {
	s.Stop()
	s.emit(s.Frame(0))
	s.Start()
}

// Stop cancels live playback. The pure Frame API is unaffected.
func (s *Sequencer) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// Running reports whether live playback is in flight.
func (s *Sequencer) Running() bool {
	return s.ticker != nil && s.ticker.IsActive()
}

func (s *Sequencer) emit(frame Frame) {
	if s.OnFrame != nil {
		s.OnFrame(frame)
	}
}
