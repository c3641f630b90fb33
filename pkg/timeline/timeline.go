// Package timeline models a choreography as data: a list of steps, each
// animating one named track between two values over a time window. Sampling
// a timeline at an elapsed time yields the value of every track, so the
// entire schedule can be unit-tested without a rendering surface, and the
// same mirror-image expand/collapse choreographies share one interpreter.
package timeline

import (
	"fmt"
	"sort"
	"time"
)

// Step animates a single track from From to To across [Start, Start+Duration].
//
// Before Start the track holds From; after the window it holds To until a
// later step for the same track takes over. A zero Duration snaps the track
// to To at Start.
type Step struct {
	Track    string
	Start    time.Duration
	Duration time.Duration
	From     float64
	To       float64
	// Curve transforms progress inside the window. Nil means linear.
	Curve func(float64) float64
}

// Snapshot holds the sampled value of every track at one instant.
type Snapshot map[string]float64

// Timeline is an ordered collection of steps, possibly several per track.
type Timeline struct {
	steps []Step
}

// New creates a timeline from the given steps.
func New(steps ...Step) *Timeline {
	tl := &Timeline{}
	tl.Append(steps...)
	return tl
}

// Append adds steps to the timeline.
func (tl *Timeline) Append(steps ...Step) {
	tl.steps = append(tl.steps, steps...)
}

// Duration returns the time at which the last step finishes.
func (tl *Timeline) Duration() time.Duration {
	var max time.Duration
	for _, s := range tl.steps {
		if end := s.Start + s.Duration; end > max {
			max = end
		}
	}
	return max
}

// Tracks returns the distinct track names, sorted.
func (tl *Timeline) Tracks() []string {
	seen := make(map[string]struct{})
	var tracks []string
	for _, s := range tl.steps {
		if _, ok := seen[s.Track]; !ok {
			seen[s.Track] = struct{}{}
			tracks = append(tracks, s.Track)
		}
	}
	sort.Strings(tracks)
	return tracks
}

// Steps returns a copy of the timeline's steps.
func (tl *Timeline) Steps() []Step {
	out := make([]Step, len(tl.steps))
	copy(out, tl.steps)
	return out
}

// Value samples one track at the given elapsed time. The second return is
// false when the timeline has no step for the track.
//
// The latest step whose window has started governs the track: inside its
// window the value is the eased interpolation, after it the value holds at
// To. Before any step has started the track holds the first step's From.
func (tl *Timeline) Value(track string, elapsed time.Duration) (float64, bool) {
	var govern *Step
	var first *Step
	for i := range tl.steps {
		s := &tl.steps[i]
		if s.Track != track {
			continue
		}
		if first == nil || s.Start < first.Start {
			first = s
		}
		if s.Start <= elapsed && (govern == nil || s.Start >= govern.Start) {
			govern = s
		}
	}
	if first == nil {
		return 0, false
	}
	if govern == nil {
		return first.From, true
	}
	return govern.at(elapsed), true
}

// Sample returns the value of every track at the given elapsed time.
func (tl *Timeline) Sample(elapsed time.Duration) Snapshot {
	snap := make(Snapshot)
	for _, track := range tl.Tracks() {
		v, _ := tl.Value(track, elapsed)
		snap[track] = v
	}
	return snap
}

// Instant returns a copy of the timeline with every delay and duration
// zeroed. Sampling it at any non-negative time yields the end state of each
// track, which is exactly the reduced-motion rendition of a choreography.
func (tl *Timeline) Instant() *Timeline {
	out := &Timeline{steps: make([]Step, len(tl.steps))}
	copy(out.steps, tl.steps)
	for i := range out.steps {
		out.steps[i].Start = 0
		out.steps[i].Duration = 0
	}
	return out
}

func (s *Step) at(elapsed time.Duration) float64 {
	if s.Duration <= 0 || elapsed >= s.Start+s.Duration {
		return s.To
	}
	progress := float64(elapsed-s.Start) / float64(s.Duration)
	if s.Curve != nil {
		progress = s.Curve(progress)
	}
	return s.From + (s.To-s.From)*progress
}

// Stagger expands a template step into count copies whose start times ascend
// by delay per index. The template's Track must contain a %d verb which
// receives the index.
func Stagger(template Step, count int, delay time.Duration) []Step {
	steps := make([]Step, 0, count)
	for i := 0; i < count; i++ {
		s := template
		s.Track = fmt.Sprintf(template.Track, i)
		s.Start = template.Start + time.Duration(i)*delay
		steps = append(steps, s)
	}
	return steps
}
