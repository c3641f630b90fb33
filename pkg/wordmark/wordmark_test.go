package wordmark_test

import (
	"testing"
	"time"

	"github.com/glint-ui/glint/pkg/animation"
	glinttest "github.com/glint-ui/glint/pkg/testing"
	"github.com/glint-ui/glint/pkg/wordmark"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func useFakeClock(t *testing.T) *glinttest.FakeClock {
	return glinttest.Install(t)
}

func TestSequencer_RevealSchedule(t *testing.T) {
	s := wordmark.New(wordmark.DefaultConfig("abcd"))

	for i := 0; i < 4; i++ {
		start := ms(300 + i*150)

		before := s.Frame(start - time.Millisecond)
		if before.Chars[i].Revealed {
			t.Errorf("char %d revealed before its reveal time", i)
		}
		if before.Chars[i].Opacity != 0 || before.Chars[i].Offset != 8 {
			t.Errorf("char %d initial state = {%v, %v}, want {0, 8}",
				i, before.Chars[i].Opacity, before.Chars[i].Offset)
		}

		at := s.Frame(start)
		if !at.Chars[i].Revealed {
			t.Errorf("char %d not revealed at its reveal time", i)
		}

		done := s.Frame(start + ms(500))
		if done.Chars[i].Opacity != 1 || done.Chars[i].Offset != 0 {
			t.Errorf("char %d final state = {%v, %v}, want {1, 0}",
				i, done.Chars[i].Opacity, done.Chars[i].Offset)
		}
	}
}

func TestSequencer_CaretAdvances(t *testing.T) {
	s := wordmark.New(wordmark.DefaultConfig("abcd"))

	if got := s.Frame(ms(299)).Caret.Position; got != wordmark.CaretBeforeFirst {
		t.Errorf("caret before first reveal = %d, want %d", got, wordmark.CaretBeforeFirst)
	}
	for i := 0; i < 4; i++ {
		f := s.Frame(ms(300 + i*150))
		if f.Caret.Position != i {
			t.Errorf("caret at reveal %d = %d, want %d", i, f.Caret.Position, i)
		}
	}
	// Monotonically non-decreasing between reveal boundaries.
	if got := s.Frame(ms(300 + 149)).Caret.Position; got != 0 {
		t.Errorf("caret between reveals = %d, want 0", got)
	}
}

func TestSequencer_CaretRetires(t *testing.T) {
	s := wordmark.New(wordmark.DefaultConfig("ab"))

	// Last reveal starts at 450, runs 500, settles 1000.
	wantRetire := ms(1950)
	if got := s.RetireTime(); got != wantRetire {
		t.Fatalf("RetireTime() = %v, want %v", got, wantRetire)
	}

	before := s.Frame(wantRetire - time.Millisecond)
	if before.Caret.Retired {
		t.Error("caret retired early")
	}
	after := s.Frame(wantRetire)
	if !after.Caret.Retired || after.Caret.Visible {
		t.Errorf("caret at retire time = %+v, want retired and hidden", after.Caret)
	}
	// Retirement is permanent.
	if !s.Frame(ms(10000)).Caret.Retired {
		t.Error("caret came back after retiring")
	}
}

func TestSequencer_CaretBlinks(t *testing.T) {
	s := wordmark.New(wordmark.DefaultConfig("abcd"))

	if !s.Frame(0).Caret.Visible {
		t.Error("caret should start visible")
	}
	if s.Frame(ms(530)).Caret.Visible {
		t.Error("caret should be blinked off at 530ms")
	}
	if !s.Frame(ms(1060)).Caret.Visible {
		t.Error("caret should be blinked on at 1060ms")
	}
}

func TestSequencer_EmptyText(t *testing.T) {
	s := wordmark.New(wordmark.DefaultConfig(""))

	f := s.Frame(0)
	if len(f.Chars) != 0 {
		t.Errorf("expected no characters, got %d", len(f.Chars))
	}
	if f.Caret.Visible || !f.Caret.Retired {
		t.Errorf("caret must never appear for empty text, got %+v", f.Caret)
	}
	if s.Timeline().Duration() != 0 {
		t.Errorf("expected empty schedule, duration %v", s.Timeline().Duration())
	}
}

func TestSequencer_SingleChar(t *testing.T) {
	s := wordmark.New(wordmark.DefaultConfig("a"))

	if got := s.Frame(ms(299)).Caret.Position; got != wordmark.CaretBeforeFirst {
		t.Errorf("caret = %d before initial delay, want before-first", got)
	}
	if got := s.Frame(ms(300)).Caret.Position; got != 0 {
		t.Errorf("caret = %d at initial delay, want 0", got)
	}
}

func TestSequencer_SpringMotionReachesSameEndState(t *testing.T) {
	cfg := wordmark.DefaultConfig("ab")
	cfg.Motion = wordmark.MotionSpring
	s := wordmark.New(cfg)

	f := s.Frame(ms(5000))
	for i, ch := range f.Chars {
		if ch.Opacity != 1 || ch.Offset != 0 {
			t.Errorf("char %d spring end state = {%v, %v}, want {1, 0}", i, ch.Opacity, ch.Offset)
		}
	}
}

func TestSequencer_ReducedMotion(t *testing.T) {
	cfg := wordmark.DefaultConfig("abcd")
	cfg.ReducedMotion = true
	s := wordmark.New(cfg)

	f := s.Frame(0)
	for i, ch := range f.Chars {
		if ch.Opacity != 1 || ch.Offset != 0 || !ch.Revealed {
			t.Errorf("char %d reduced-motion state = %+v, want revealed end state", i, ch)
		}
	}
	if !f.Caret.Retired {
		t.Error("reduced motion should retire the caret immediately")
	}
}

func TestSequencer_LiveRun(t *testing.T) {
	clk := useFakeClock(t)

	s := wordmark.New(wordmark.DefaultConfig("ab"))
	var frames []wordmark.Frame
	s.OnFrame = func(f wordmark.Frame) { frames = append(frames, f) }

	s.Start()
	defer s.Stop()

	clk.Advance(ms(300))
	animation.StepTickers()
	if last := frames[len(frames)-1]; last.Caret.Position != 0 {
		t.Errorf("caret = %d at 300ms, want 0", last.Caret.Position)
	}

	clk.Advance(ms(150))
	animation.StepTickers()
	if last := frames[len(frames)-1]; last.Caret.Position != 1 {
		t.Errorf("caret = %d at 450ms, want 1", last.Caret.Position)
	}

	// Ticker self-stops once the caret retires.
	clk.Advance(ms(1500))
	animation.StepTickers()
	if s.Running() {
		t.Error("sequencer still running after retirement")
	}
	if last := frames[len(frames)-1]; !last.Caret.Retired {
		t.Error("final frame should have a retired caret")
	}
}

func TestSequencer_ReplayResetsCleanly(t *testing.T) {
	clk := useFakeClock(t)

	s := wordmark.New(wordmark.DefaultConfig("ab"))
	var frames []wordmark.Frame
	s.OnFrame = func(f wordmark.Frame) { frames = append(frames, f) }

	s.Start()
	defer s.Stop()

	// Forced replay at t=100ms, mid initial delay of the first run.
	clk.Advance(ms(100))
	animation.StepTickers()
	frames = nil
	s.Replay()

	// The first frame after replay restores every character to {0, 8}.
	if len(frames) == 0 {
		t.Fatal("replay emitted no reset frame")
	}
	reset := frames[0]
	for i, ch := range reset.Chars {
		if ch.Opacity != 0 || ch.Offset != 8 {
			t.Errorf("char %d after replay = {%v, %v}, want {0, 8}", i, ch.Opacity, ch.Offset)
		}
	}

	// Never more than one live ticker.
	if n := animation.ActiveTickerCount(); n != 1 {
		t.Errorf("active tickers after replay = %d, want 1", n)
	}

	// The restarted schedule runs from time zero.
	clk.Advance(ms(300))
	animation.StepTickers()
	if last := frames[len(frames)-1]; last.Caret.Position != 0 {
		t.Errorf("caret = %d at replay+300ms, want 0", last.Caret.Position)
	}
}
