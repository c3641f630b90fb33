package disclosure_test

import (
	"testing"
	"time"

	"github.com/glint-ui/glint/pkg/animation"
	"github.com/glint-ui/glint/pkg/disclosure"
	glinttest "github.com/glint-ui/glint/pkg/testing"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func useFakeClock(t *testing.T) *glinttest.FakeClock {
	return glinttest.Install(t)
}

func newController(t *testing.T) *disclosure.Controller {
	t.Helper()
	c := disclosure.NewController(disclosure.DefaultConfig("engineer", "designer", "writer"))
	t.Cleanup(c.Dispose)
	return c
}

func TestController_ActivateTogglesState(t *testing.T) {
	clk := useFakeClock(t)
	c := newController(t)

	var toggles []bool
	c.OnToggle = func(expanded bool) { toggles = append(toggles, expanded) }

	if !c.Activate() {
		t.Fatal("first activation rejected")
	}
	if c.State() != disclosure.Expanded {
		t.Errorf("state = %v, want expanded", c.State())
	}
	if !c.Transitioning() {
		t.Error("guard not set during expand")
	}

	// Run the expand to completion.
	clk.Advance(c.ExpandTimeline().Duration())
	animation.StepTickers()
	if c.Transitioning() {
		t.Error("guard still set after expand completed")
	}

	c.Activate()
	clk.Advance(c.CollapseTimeline().Duration())
	animation.StepTickers()
	if c.State() != disclosure.Collapsed {
		t.Errorf("state = %v, want collapsed", c.State())
	}

	if len(toggles) != 2 || !toggles[0] || toggles[1] {
		t.Errorf("toggle callbacks = %v, want [true false]", toggles)
	}
}

func TestController_ReentrantActivationDropped(t *testing.T) {
	clk := useFakeClock(t)
	c := newController(t)

	changes := 0
	c.OnToggle = func(bool) { changes++ }

	c.Activate()
	clk.Advance(ms(100))
	animation.StepTickers()

	// Second activation inside the transition window: dropped, not queued.
	if c.Activate() {
		t.Error("activation accepted while transitioning")
	}
	if changes != 1 {
		t.Errorf("state changes = %d, want exactly 1", changes)
	}
	if c.State() != disclosure.Expanded {
		t.Errorf("state = %v, want expanded", c.State())
	}

	// After the guard clears the next activation goes through.
	clk.Advance(c.ExpandTimeline().Duration())
	animation.StepTickers()
	if !c.Activate() {
		t.Error("activation rejected after guard cleared")
	}
}

func TestController_ExpandChoreography(t *testing.T) {
	c := newController(t)
	tl := c.ExpandTimeline()

	// t=0: primary view exits.
	if v, _ := tl.Value("primary.opacity", 0); v != 1 {
		t.Errorf("primary.opacity at 0 = %v, want 1", v)
	}
	if v, _ := tl.Value("primary.opacity", ms(400)); v != 0 {
		t.Errorf("primary.opacity at 400ms = %v, want 0", v)
	}
	if v, _ := tl.Value("primary.scale", ms(400)); v != 0.95 {
		t.Errorf("primary.scale at 400ms = %v, want 0.95", v)
	}

	// t=200ms: panel entrance begins.
	if v, _ := tl.Value("panel.blur", ms(200)); v != 0 {
		t.Errorf("panel.blur at 200ms = %v, want 0 (just starting)", v)
	}
	if v, _ := tl.Value("panel.blur", ms(800)); v != 20 {
		t.Errorf("panel.blur at 800ms = %v, want 20", v)
	}

	// Items stagger ascending from 200ms by 60ms.
	if v, _ := tl.Value("item0.opacity", ms(199)); v != 0 {
		t.Errorf("item0 started early: %v", v)
	}
	if v, _ := tl.Value("item2.opacity", ms(319)); v != 0 {
		t.Errorf("item2 started before 320ms: %v", v)
	}
	if v, _ := tl.Value("item2.opacity", ms(720)); v != 1 {
		t.Errorf("item2.opacity at 720ms = %v, want 1", v)
	}
	if v, _ := tl.Value("item2.offset", ms(720)); v != 0 {
		t.Errorf("item2.offset at 720ms = %v, want 0", v)
	}
}

func TestController_CollapseChoreography(t *testing.T) {
	c := newController(t)
	tl := c.CollapseTimeline()

	// Items exit first with the faster stagger.
	if v, _ := tl.Value("item0.opacity", ms(300)); v != 0 {
		t.Errorf("item0.opacity at 300ms = %v, want 0", v)
	}
	if v, _ := tl.Value("item2.offset", ms(340)); v != -10 {
		t.Errorf("item2.offset at 340ms = %v, want -10", v)
	}

	// Panel and primary return from 400ms.
	if v, _ := tl.Value("primary.opacity", ms(399)); v != 0 {
		t.Errorf("primary returned early: %v", v)
	}
	if v, _ := tl.Value("primary.opacity", ms(800)); v != 1 {
		t.Errorf("primary.opacity at 800ms = %v, want 1", v)
	}
	if v, _ := tl.Value("panel.opacity", ms(800)); v != 0 {
		t.Errorf("panel.opacity at 800ms = %v, want 0", v)
	}

	if tl.Duration() != ms(800) {
		t.Errorf("collapse duration = %v, want 800ms", tl.Duration())
	}
}

func TestController_RoundTripRestoresRest(t *testing.T) {
	clk := useFakeClock(t)
	c := newController(t)

	c.Activate()
	clk.Advance(c.ExpandTimeline().Duration())
	animation.StepTickers()
	c.Activate()
	clk.Advance(c.CollapseTimeline().Duration())
	animation.StepTickers()

	snap := c.Frame()
	if snap["primary.opacity"] != 1 || snap["primary.scale"] != 1 {
		t.Errorf("primary not restored: opacity=%v scale=%v",
			snap["primary.opacity"], snap["primary.scale"])
	}
	if snap["panel.opacity"] != 0 {
		t.Errorf("panel still visible: %v", snap["panel.opacity"])
	}
	for i := 0; i < 3; i++ {
		track := []string{"item0.opacity", "item1.opacity", "item2.opacity"}[i]
		if snap[track] != 0 {
			t.Errorf("%s = %v, want 0 after round trip", track, snap[track])
		}
	}
}

func TestController_InitialRestSnapshot(t *testing.T) {
	useFakeClock(t)
	c := newController(t)

	snap := c.Frame()
	if snap["primary.opacity"] != 1 || snap["primary.scale"] != 1 {
		t.Errorf("initial primary = %v/%v, want 1/1",
			snap["primary.opacity"], snap["primary.scale"])
	}
	if snap["item1.opacity"] != 0 || snap["item1.offset"] != 15 {
		t.Errorf("initial item1 = %v/%v, want 0/15",
			snap["item1.opacity"], snap["item1.offset"])
	}
}

func TestController_ReducedMotion(t *testing.T) {
	useFakeClock(t)
	cfg := disclosure.DefaultConfig("engineer", "designer", "writer")
	cfg.ReducedMotion = true
	c := disclosure.NewController(cfg)
	defer c.Dispose()

	changes := 0
	c.OnToggle = func(bool) { changes++ }

	// Transition completes synchronously; guard set and cleared in one call.
	c.Activate()
	if c.Transitioning() {
		t.Error("guard left set in reduced-motion mode")
	}
	snap := c.Frame()
	if snap["panel.opacity"] != 1 || snap["item2.opacity"] != 1 {
		t.Errorf("reduced-motion expand end state wrong: %v", snap)
	}

	c.Activate()
	snap = c.Frame()
	if snap["primary.opacity"] != 1 || snap["panel.opacity"] != 0 {
		t.Errorf("reduced-motion collapse end state wrong: %v", snap)
	}
	if changes != 2 {
		t.Errorf("state changes = %d, want 2", changes)
	}
}

func TestController_NoItems(t *testing.T) {
	clk := useFakeClock(t)
	c := disclosure.NewController(disclosure.DefaultConfig())
	defer c.Dispose()

	c.Activate()
	clk.Advance(c.ExpandTimeline().Duration())
	animation.StepTickers()

	if c.Transitioning() {
		t.Error("guard stuck with zero items")
	}
	if v := c.Frame()["panel.opacity"]; v != 1 {
		t.Errorf("panel.opacity = %v, want 1", v)
	}
}

type fakeSource struct {
	fns []func()
}

func (s *fakeSource) Subscribe(fn func()) func() {
	s.fns = append(s.fns, fn)
	return func() { s.fns = nil }
}

func (s *fakeSource) fire() {
	for _, fn := range s.fns {
		fn()
	}
}

func TestController_ActivationSource(t *testing.T) {
	useFakeClock(t)
	c := newController(t)

	src := &fakeSource{}
	unsub := c.Attach(src)

	src.fire()
	if c.State() != disclosure.Expanded {
		t.Errorf("state after source fire = %v, want expanded", c.State())
	}

	unsub()
	src.fire()
	// Still expanded and still mid-transition; the unsubscribed source
	// must not reach the controller at all.
	if len(src.fns) != 0 {
		t.Error("unsubscribe did not detach the source")
	}
}

func TestHint_ArmsAfterDelayAndSilences(t *testing.T) {
	clk := useFakeClock(t)
	c := newController(t)
	hint := c.Hint()

	if hint.Visible() {
		t.Error("hint visible before its 2500ms deadline")
	}

	clk.Advance(ms(2500))
	if op := hint.Opacity(); op != 0 {
		t.Errorf("hint opacity at deadline = %v, want fade starting from 0", op)
	}
	clk.Advance(ms(150))
	if op := hint.Opacity(); op <= 0 || op >= 1 {
		t.Errorf("hint opacity mid-fade = %v, want between 0 and 1", op)
	}
	clk.Advance(ms(150))
	if op := hint.Opacity(); op != 1 {
		t.Errorf("hint opacity after fade = %v, want 1", op)
	}

	// First activation silences it.
	c.Activate()
	if hint.Visible() {
		t.Error("hint still visible after activation")
	}
}

func TestHint_RearmsOnCollapse(t *testing.T) {
	clk := useFakeClock(t)
	c := newController(t)

	c.Activate()
	clk.Advance(c.ExpandTimeline().Duration())
	animation.StepTickers()
	c.Activate()
	clk.Advance(c.CollapseTimeline().Duration())
	animation.StepTickers()

	// Collapse completion re-arms the hint; it fades in over 300ms.
	hint := c.Hint()
	clk.Advance(ms(300))
	if op := hint.Opacity(); op != 1 {
		t.Errorf("hint opacity after re-arm fade = %v, want 1", op)
	}
}
