// Package tui renders the intro animation in a terminal. It is a thin
// adapter: every visual decision comes from the pure snapshot APIs in
// pkg/wordmark and pkg/disclosure; this package only maps opacity and offset
// values onto cells and colors, and feeds input back as activations.
package tui

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/glint-ui/glint/pkg/animation"
	"github.com/glint-ui/glint/pkg/disclosure"
	"github.com/glint-ui/glint/pkg/wordmark"
)

// Options configures the terminal app.
type Options struct {
	Wordmark   wordmark.Config
	Disclosure disclosure.Config
	// Sound plays a short chime on each toggle.
	Sound bool
}

// App owns the screen, the two sequencing components, and the input routing.
// It implements [disclosure.ActivationSource]: clicks anywhere and
// Space/Enter presses are delivered to whoever subscribes, which is the
// disclosure controller for exactly the app's lifetime.
type App struct {
	screen        tcell.Screen
	width, height int

	seq     *wordmark.Sequencer
	ctrl    *disclosure.Controller
	wmFrame wordmark.Frame

	subs   map[int]func()
	nextID int

	chime       *Chime
	lastButtons tcell.ButtonMask
}

// New initializes the screen and wires the components together.
func New(opts Options) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newApp(screen, opts)
}

func newApp(screen tcell.Screen, opts Options) (*App, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &App{
		screen: screen,
		subs:   make(map[int]func()),
	}
	a.width, a.height = screen.Size()

	a.seq = wordmark.New(opts.Wordmark)
	a.seq.OnFrame = func(f wordmark.Frame) { a.wmFrame = f }
	a.wmFrame = a.seq.Frame(0)

	a.ctrl = disclosure.NewController(opts.Disclosure)
	a.ctrl.Attach(a)

	if opts.Sound {
		chime, err := NewChime()
		if err != nil {
			// Audio is decorative; run silent.
			log.Printf("audio initialization failed: %v", err)
		}
		a.chime = chime
		a.ctrl.OnToggle = func(bool) { a.chime.Play() }
	}

	return a, nil
}

// Subscribe implements disclosure.ActivationSource.
func (a *App) Subscribe(fn func()) func() {
	id := a.nextID
	a.nextID++
	a.subs[id] = fn
	return func() { delete(a.subs, id) }
}

func (a *App) activate() {
	for _, fn := range a.subs {
		fn()
	}
}

// Run starts the wordmark and blocks until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			// PollEvent returns nil once Fini runs; that ends the goroutine.
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.seq.Start()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			animation.StepTickers()
			a.draw()
		}
	}
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		// Space and Enter map to the same activation as a click. Owning
		// the whole terminal is what suppresses their default action.
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			a.activate()
			return true
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
			a.seq.Replay()
		}

	case *tcell.EventMouse:
		// Full-viewport capture: a primary press anywhere toggles, even
		// over the panel.
		pressed := ev.Buttons()&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 == 0
		a.lastButtons = ev.Buttons()
		if pressed {
			a.activate()
		}

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
	}

	return true
}

// Close restores the terminal.
func (a *App) Close() {
	a.ctrl.Dispose()
	a.seq.Stop()
	a.chime.Close()
	a.screen.Fini()
}
