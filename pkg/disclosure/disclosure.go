// Package disclosure implements the two-state content panel: a collapsed
// primary view that expands, on user activation, into a blurred panel with a
// staggered list of labels, and collapses back on the next activation.
//
// Both choreographies are declarative [timeline.Timeline] values interpreted
// by one player each, so expand and collapse are mirror images of the same
// data shape rather than two nests of timers. A `transitioning` guard gives
// mutual exclusion between overlapping activations: a second activation
// arriving before the guard clears is dropped, never queued.
package disclosure

import (
	"time"

	"github.com/glint-ui/glint/pkg/animation"
	"github.com/glint-ui/glint/pkg/timeline"
)

// State is the controller's logical position.
type State int

const (
	// Collapsed shows the primary view.
	Collapsed State = iota
	// Expanded shows the secondary panel and its items.
	Expanded
)

// String returns a human-readable state name.
func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Config carries the item labels and choreography timings.
type Config struct {
	// Items is the short fixed label list shown while expanded.
	Items []string

	// PrimaryFade is the primary view's exit (and return) length.
	PrimaryFade time.Duration
	// PrimaryScaleMin is the primary view's scale at full exit.
	PrimaryScaleMin float64

	// PanelDelay postpones the panel's entrance during expand.
	PanelDelay time.Duration
	// PanelEnter is the panel's blur/opacity entrance length.
	PanelEnter time.Duration
	// PanelExit is the panel's exit length during collapse.
	PanelExit time.Duration
	// PanelBlur is the backdrop blur extent at full entrance.
	PanelBlur float64

	// ItemDelay postpones the first item during expand.
	ItemDelay time.Duration
	// ItemEnter is each item's entrance length.
	ItemEnter time.Duration
	// ItemExit is each item's exit length during collapse.
	ItemExit time.Duration
	// ItemRise is the vertical offset items enter from.
	ItemRise float64
	// ItemDrop is the vertical offset items exit to (negated).
	ItemDrop float64
	// ExpandStagger separates item entrances.
	ExpandStagger time.Duration
	// CollapseStagger separates item exits (faster than ExpandStagger).
	CollapseStagger time.Duration

	// CollapseReturnDelay postpones the panel exit and primary return
	// during collapse, leaving room for the items to clear first.
	CollapseReturnDelay time.Duration

	// HintDelay arms the hint indicator this long after mount, the total
	// duration of the wordmark reveal.
	HintDelay time.Duration
	// HintFade is the hint's fade-in length.
	HintFade time.Duration

	// ReducedMotion plays both choreographies with zero durations while
	// preserving end states.
	ReducedMotion bool
}

// DefaultConfig returns the source timings for the given labels.
func DefaultConfig(items ...string) Config {
	return Config{
		Items:               items,
		PrimaryFade:         400 * time.Millisecond,
		PrimaryScaleMin:     0.95,
		PanelDelay:          200 * time.Millisecond,
		PanelEnter:          600 * time.Millisecond,
		PanelExit:           400 * time.Millisecond,
		PanelBlur:           20,
		ItemDelay:           200 * time.Millisecond,
		ItemEnter:           400 * time.Millisecond,
		ItemExit:            300 * time.Millisecond,
		ItemRise:            15,
		ItemDrop:            10,
		ExpandStagger:       60 * time.Millisecond,
		CollapseStagger:     20 * time.Millisecond,
		CollapseReturnDelay: 400 * time.Millisecond,
		HintDelay:           2500 * time.Millisecond,
		HintFade:            300 * time.Millisecond,
	}
}

// ActivationSource delivers user activations (pointer taps, key presses) to
// a subscriber. Adapters implement it so the controller can subscribe for
// exactly its own lifetime instead of leaking document-scope listeners.
type ActivationSource interface {
	Subscribe(fn func()) (unsubscribe func())
}

// Controller owns the disclosure state machine and its choreographies.
type Controller struct {
	// OnToggle is invoked on every state change with the new expanded flag.
	OnToggle func(expanded bool)
	// OnFrame receives visual snapshots while a transition plays.
	OnFrame func(timeline.Snapshot)

	cfg           Config
	state         State
	transitioning bool
	everExpanded  bool

	expand   *timeline.Player
	collapse *timeline.Player
	current  timeline.Snapshot
	hint     *Hint
	unsubs   []func()
}

// NewController builds a controller in the Collapsed state and starts the
// hint indicator's arming timer.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	c.expand = timeline.NewPlayer(buildExpand(cfg))
	c.collapse = timeline.NewPlayer(buildCollapse(cfg))
	c.expand.ReducedMotion = cfg.ReducedMotion
	c.collapse.ReducedMotion = cfg.ReducedMotion

	c.expand.OnFrame = c.frame
	c.collapse.OnFrame = c.frame
	c.expand.OnComplete = func() { c.transitioning = false }
	c.collapse.OnComplete = func() {
		c.transitioning = false
		// Returning to Collapsed re-arms the hint.
		c.hint.Rearm()
	}

	c.hint = NewHint(cfg.HintDelay, cfg.HintFade, cfg.ReducedMotion)
	c.current = c.restSnapshot()
	return c
}

// Attach subscribes the controller to an activation source. The returned
// function (also run by Dispose) cancels the subscription.
func (c *Controller) Attach(src ActivationSource) func() {
	unsub := src.Subscribe(func() { c.Activate() })
	c.unsubs = append(c.unsubs, unsub)
	return unsub
}

// Activate requests a state change. Pointer and key sources both land here.
// Returns false when the request is dropped because a transition is already
// in flight.
func (c *Controller) Activate() bool {
	if c.transitioning {
		return false
	}
	c.transitioning = true
	c.hint.Silence()

	if c.state == Collapsed {
		c.state = Expanded
		c.everExpanded = true
		c.notifyToggle()
		c.expand.Play()
	} else {
		c.state = Collapsed
		c.notifyToggle()
		c.collapse.Play()
	}
	return true
}

func (c *Controller) notifyToggle() {
	if c.OnToggle != nil {
		c.OnToggle(c.state == Expanded)
	}
}

// State returns the current logical state.
func (c *Controller) State() State { return c.state }

// Expanded reports whether the controller is in the Expanded state.
func (c *Controller) Expanded() bool { return c.state == Expanded }

// Transitioning reports whether a choreography is in flight.
func (c *Controller) Transitioning() bool { return c.transitioning }

// Hint returns the hint indicator.
func (c *Controller) Hint() *Hint { return c.hint }

// Items returns the configured labels.
func (c *Controller) Items() []string { return c.cfg.Items }

// Frame returns the current visual snapshot: the last frame of the playing
// (or finished) choreography, or the collapsed rest state before any
// activation.
func (c *Controller) Frame() timeline.Snapshot {
	return c.current
}

// ExpandTimeline returns the expand choreography.
func (c *Controller) ExpandTimeline() *timeline.Timeline { return c.expand.Timeline() }

// CollapseTimeline returns the collapse choreography.
func (c *Controller) CollapseTimeline() *timeline.Timeline { return c.collapse.Timeline() }

// Dispose stops both players and cancels source subscriptions.
func (c *Controller) Dispose() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	c.expand.Dispose()
	c.collapse.Dispose()
}

func (c *Controller) frame(snap timeline.Snapshot) {
	c.current = snap
	if c.OnFrame != nil {
		c.OnFrame(snap)
	}
}

// restSnapshot is the collapsed steady state before any transition.
func (c *Controller) restSnapshot() timeline.Snapshot {
	snap := timeline.Snapshot{
		"primary.opacity": 1,
		"primary.scale":   1,
		"panel.opacity":   0,
		"panel.blur":      0,
	}
	for track, v := range itemRest(c.cfg) {
		snap[track] = v
	}
	return snap
}

func itemRest(cfg Config) timeline.Snapshot {
	snap := timeline.Snapshot{}
	steps := timeline.Stagger(timeline.Step{Track: "item%d.opacity"}, len(cfg.Items), 0)
	for _, s := range steps {
		snap[s.Track] = 0
	}
	steps = timeline.Stagger(timeline.Step{Track: "item%d.offset"}, len(cfg.Items), 0)
	for _, s := range steps {
		snap[s.Track] = cfg.ItemRise
	}
	return snap
}

// buildExpand lays out the expand choreography:
// primary out at t=0, panel in at PanelDelay, items staggered from ItemDelay.
func buildExpand(cfg Config) *timeline.Timeline {
	tl := timeline.New(
		timeline.Step{Track: "primary.opacity", Start: 0, Duration: cfg.PrimaryFade,
			From: 1, To: 0, Curve: animation.EaseOutExpo},
		timeline.Step{Track: "primary.scale", Start: 0, Duration: cfg.PrimaryFade,
			From: 1, To: cfg.PrimaryScaleMin, Curve: animation.EaseOutExpo},
		timeline.Step{Track: "panel.opacity", Start: cfg.PanelDelay, Duration: cfg.PanelEnter,
			From: 0, To: 1, Curve: animation.EaseOutExpo},
		timeline.Step{Track: "panel.blur", Start: cfg.PanelDelay, Duration: cfg.PanelEnter,
			From: 0, To: cfg.PanelBlur, Curve: animation.EaseOutExpo},
	)
	tl.Append(timeline.Stagger(timeline.Step{
		Track: "item%d.opacity", Start: cfg.ItemDelay, Duration: cfg.ItemEnter,
		From: 0, To: 1, Curve: animation.EaseOutExpo,
	}, len(cfg.Items), cfg.ExpandStagger)...)
	tl.Append(timeline.Stagger(timeline.Step{
		Track: "item%d.offset", Start: cfg.ItemDelay, Duration: cfg.ItemEnter,
		From: cfg.ItemRise, To: 0, Curve: animation.EaseOutExpo,
	}, len(cfg.Items), cfg.ExpandStagger)...)
	return tl
}

// buildCollapse lays out the mirror image, faster: items out immediately,
// panel exit and primary return at CollapseReturnDelay.
func buildCollapse(cfg Config) *timeline.Timeline {
	tl := timeline.New(
		timeline.Step{Track: "panel.opacity", Start: cfg.CollapseReturnDelay, Duration: cfg.PanelExit,
			From: 1, To: 0, Curve: animation.EaseInExpo},
		timeline.Step{Track: "panel.blur", Start: cfg.CollapseReturnDelay, Duration: cfg.PanelExit,
			From: cfg.PanelBlur, To: 0, Curve: animation.EaseInExpo},
		timeline.Step{Track: "primary.opacity", Start: cfg.CollapseReturnDelay, Duration: cfg.PrimaryFade,
			From: 0, To: 1, Curve: animation.EaseOutExpo},
		timeline.Step{Track: "primary.scale", Start: cfg.CollapseReturnDelay, Duration: cfg.PrimaryFade,
			From: cfg.PrimaryScaleMin, To: 1, Curve: animation.EaseOutExpo},
	)
	tl.Append(timeline.Stagger(timeline.Step{
		Track: "item%d.opacity", Start: 0, Duration: cfg.ItemExit,
		From: 1, To: 0, Curve: animation.EaseOutExpo,
	}, len(cfg.Items), cfg.CollapseStagger)...)
	tl.Append(timeline.Stagger(timeline.Step{
		Track: "item%d.offset", Start: 0, Duration: cfg.ItemExit,
		From: 0, To: -cfg.ItemDrop, Curve: animation.EaseOutExpo,
	}, len(cfg.Items), cfg.CollapseStagger)...)
	return tl
}
