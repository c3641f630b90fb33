package disclosure

import (
	"time"

	"github.com/glint-ui/glint/pkg/animation"
)

// Hint is the "tap anywhere" nudge. It has no state machine of its own:
// a single visibility deadline, armed at mount for HintDelay after the
// wordmark settles, forced off by the first activation, and re-armed each
// time the controller returns to Collapsed after a visit to Expanded.
type Hint struct {
	fade     time.Duration
	showAt   time.Time
	silenced bool
}

// NewHint arms a hint that appears delay after now.
func NewHint(delay, fade time.Duration, reduced bool) *Hint {
	if reduced {
		delay = 0
		fade = 0
	}
	return &Hint{
		fade:   fade,
		showAt: animation.Now().Add(delay),
	}
}

// Silence hides the hint. The pending mount deadline never re-fires; only
// Rearm brings the hint back.
func (h *Hint) Silence() {
	h.silenced = true
}

// Rearm makes the hint visible again, fading in from now.
func (h *Hint) Rearm() {
	h.silenced = false
	h.showAt = animation.Now()
}

// Visible reports whether the hint is showing at all.
func (h *Hint) Visible() bool {
	return h.Opacity() > 0
}

// Opacity returns the hint's current opacity: 0 before the deadline or
// while silenced, ramping to 1 over the fade length once showing.
func (h *Hint) Opacity() float64 {
	if h.silenced {
		return 0
	}
	since := animation.Since(h.showAt)
	if since < 0 {
		return 0
	}
	if h.fade <= 0 || since >= h.fade {
		return 1
	}
	return animation.EaseOut(float64(since) / float64(h.fade))
}
