package timeline_test

import (
	"testing"
	"time"

	"github.com/glint-ui/glint/pkg/animation"
	glinttest "github.com/glint-ui/glint/pkg/testing"
	"github.com/glint-ui/glint/pkg/timeline"
)

func useFakeClock(t *testing.T) *glinttest.FakeClock {
	return glinttest.Install(t)
}

func fadeTimeline() *timeline.Timeline {
	return timeline.New(timeline.Step{
		Track:    "opacity",
		Duration: 400 * time.Millisecond,
		From:     0,
		To:       1,
	})
}

func TestPlayer_DeliversFramesAndCompletes(t *testing.T) {
	clk := useFakeClock(t)

	p := timeline.NewPlayer(fadeTimeline())
	defer p.Dispose()

	var last timeline.Snapshot
	completed := 0
	p.OnFrame = func(s timeline.Snapshot) { last = s }
	p.OnComplete = func() { completed++ }

	p.Play()
	if !p.Playing() {
		t.Fatal("expected player to be playing")
	}

	clk.Advance(200 * time.Millisecond)
	animation.StepTickers()
	if last["opacity"] != 0.5 {
		t.Errorf("mid-play opacity = %v, want 0.5", last["opacity"])
	}

	clk.Advance(200 * time.Millisecond)
	animation.StepTickers()
	if last["opacity"] != 1 {
		t.Errorf("final opacity = %v, want 1", last["opacity"])
	}
	if completed != 1 {
		t.Errorf("OnComplete fired %d times, want 1", completed)
	}
	if p.Playing() {
		t.Error("player still playing after completion")
	}
}

func TestPlayer_ReplayNeverDoubleSchedules(t *testing.T) {
	clk := useFakeClock(t)

	p := timeline.NewPlayer(fadeTimeline())
	defer p.Dispose()

	p.Play()
	clk.Advance(100 * time.Millisecond)
	animation.StepTickers()
	p.Play() // restart mid-flight

	if n := animation.ActiveTickerCount(); n != 1 {
		t.Errorf("active tickers = %d, want 1", n)
	}

	// The restarted play begins from zero.
	var last timeline.Snapshot
	p.OnFrame = func(s timeline.Snapshot) { last = s }
	clk.Advance(200 * time.Millisecond)
	animation.StepTickers()
	if last["opacity"] != 0.5 {
		t.Errorf("opacity after restart = %v, want 0.5", last["opacity"])
	}
}

func TestPlayer_ReducedMotionCompletesSynchronously(t *testing.T) {
	useFakeClock(t)

	p := timeline.NewPlayer(fadeTimeline())
	defer p.Dispose()
	p.ReducedMotion = true

	var last timeline.Snapshot
	completed := false
	p.OnFrame = func(s timeline.Snapshot) { last = s }
	p.OnComplete = func() { completed = true }

	p.Play()

	if !completed {
		t.Fatal("expected synchronous completion")
	}
	if last["opacity"] != 1 {
		t.Errorf("reduced-motion end state = %v, want 1", last["opacity"])
	}
	if animation.HasActiveTickers() {
		t.Error("reduced-motion play left a ticker running")
	}
}

func TestPlayer_StopHoldsValue(t *testing.T) {
	clk := useFakeClock(t)

	p := timeline.NewPlayer(fadeTimeline())
	defer p.Dispose()

	p.Play()
	clk.Advance(100 * time.Millisecond)
	animation.StepTickers()
	p.Stop()

	if p.Playing() {
		t.Error("expected player stopped")
	}
	if animation.HasActiveTickers() {
		t.Error("expected no active tickers after stop")
	}
}
