package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/multi-pong/constant"
	"github.com/lixenwraith/multi-pong/core"
	"github.com/lixenwraith/multi-pong/render"
)

var (
	ErrWindowExists = errors.New("terminal: window already created")
	ErrNoWindow     = errors.New("terminal: window destroyed")
	ErrNoColor      = errors.New("terminal: color output not supported")
	ErrNoDriver     = errors.New("terminal: unknown render driver")
)

// Options configures the backend; zero values select defaults
type Options struct {
	// Screen is used instead of the controlling terminal, e.g. a simulation screen
	Screen tcell.Screen
	// HoldWindow keeps a freshly pressed key held until autorepeat kicks in
	HoldWindow time.Duration
	// RepeatGrace keeps a key held between autorepeat events
	RepeatGrace time.Duration
	// Now overrides the latch clock
	Now func() time.Time
}

// Backend owns the tcell screen and its event pump
type Backend struct {
	opts Options

	mu      sync.Mutex
	screen  tcell.Screen
	started bool
	window  *Window

	events   chan tcell.Event
	done     chan struct{}
	pumpDone chan struct{}
	quitOnce sync.Once
	keyboard *Keyboard
}

// New creates a backend; the screen is acquired by CreateWindow
func New(opts Options) *Backend {
	if opts.HoldWindow == 0 {
		opts.HoldWindow = constant.KeyHoldWindow
	}
	if opts.RepeatGrace == 0 {
		opts.RepeatGrace = constant.KeyRepeatGrace
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	b := &Backend{
		opts:     opts,
		screen:   opts.Screen,
		events:   make(chan tcell.Event, constant.EventQueueSize),
		done:     make(chan struct{}),
		pumpDone: make(chan struct{}),
	}
	b.keyboard = newKeyboard(b.events, opts)
	return b
}

// Input returns the key source fed by this backend's screen
func (b *Backend) Input() *Keyboard {
	return b.keyboard
}

// Screen returns the underlying screen; nil until CreateWindow unless one was injected
func (b *Backend) Screen() tcell.Screen {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.screen
}

// CreateWindow initializes the screen and starts the event pump
// Position and flags do not apply to a terminal and are ignored
func (b *Backend) CreateWindow(title string, x, y, w, h int, flags render.WindowFlags) (render.Window, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.window != nil {
		return nil, ErrWindowExists
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("terminal: invalid window size %dx%d", w, h)
	}

	if b.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		b.screen = screen
	}
	if err := b.screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	b.started = true

	b.screen.SetTitle(title)
	b.screen.HideCursor()
	b.screen.SetStyle(tcell.StyleDefault)
	b.screen.Clear()

	screen := b.screen
	core.RegisterReset(screen.Fini)
	core.Go(func() { b.pump(screen) })

	b.window = &Window{backend: b, title: title, width: w, height: h}
	return b.window, nil
}

// pump forwards screen events until the screen is finalized
func (b *Backend) pump(screen tcell.Screen) {
	defer close(b.pumpDone)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

// Quit restores the terminal and stops the event pump
func (b *Backend) Quit() {
	b.quitOnce.Do(func() {
		b.mu.Lock()
		screen, started := b.screen, b.started
		b.started = false
		b.window = nil
		b.mu.Unlock()

		close(b.done)
		if started {
			core.RegisterReset(nil)
			screen.Fini()
			<-b.pumpDone
		}
	})
}
