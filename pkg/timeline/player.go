package timeline

import (
	"time"

	"github.com/glint-ui/glint/pkg/animation"
)

// Player drives a [Timeline] against the animation clock.
//
// A player owns exactly one [animation.AnimationController]; starting a play
// while a previous one is in flight cancels it first, so a replayed
// choreography never double-schedules. Frames are delivered to OnFrame and
// completion to OnComplete, both on the host's StepTickers goroutine.
type Player struct {
	// OnFrame receives the sampled snapshot for every tick.
	OnFrame func(Snapshot)
	// OnComplete fires once each time a play reaches the end.
	OnComplete func()
	// ReducedMotion skips the schedule entirely: Play emits the final
	// snapshot and completes synchronously.
	ReducedMotion bool

	tl         *Timeline
	controller *animation.AnimationController
}

// NewPlayer creates a player for the given timeline.
func NewPlayer(tl *Timeline) *Player {
	p := &Player{tl: tl}
	p.controller = animation.NewAnimationController(tl.Duration())
	p.controller.AddListener(func() {
		if p.OnFrame != nil {
			p.OnFrame(p.sampleNow())
		}
	})
	p.controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted && p.OnComplete != nil {
			p.OnComplete()
		}
	})
	return p
}

// Timeline returns the timeline being played.
func (p *Player) Timeline() *Timeline { return p.tl }

// Play starts the timeline from the beginning, cancelling any play already
// in flight. With ReducedMotion set (or an empty timeline) the final frame
// is emitted immediately and OnComplete runs before Play returns.
func (p *Player) Play() {
	if p.ReducedMotion || p.tl.Duration() <= 0 {
		p.Stop()
		if p.OnFrame != nil {
			p.OnFrame(p.tl.Sample(p.tl.Duration()))
		}
		if p.OnComplete != nil {
			p.OnComplete()
		}
		return
	}
	p.controller.Stop()
	p.controller.Value = 0
	p.controller.Forward()
}

// Stop cancels the current play, leaving track values where they are.
func (p *Player) Stop() {
	p.controller.Stop()
}

// Playing reports whether a play is in flight.
func (p *Player) Playing() bool {
	return p.controller.IsAnimating()
}

// Dispose releases the player's controller.
func (p *Player) Dispose() {
	p.controller.Dispose()
}

func (p *Player) sampleNow() Snapshot {
	elapsed := time.Duration(p.controller.Value * float64(p.tl.Duration()))
	return p.tl.Sample(elapsed)
}
