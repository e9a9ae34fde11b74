package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/multi-pong/config"
	"github.com/lixenwraith/multi-pong/input"
	"github.com/lixenwraith/multi-pong/render"
	"github.com/lixenwraith/multi-pong/vmath"
)

// RandSource is the injectable random generator used for spawn velocities
// Satisfied by *vmath.FastRand and *math/rand.Rand
type RandSource interface {
	Intn(n int) int
}

// Game owns all session state: paddles, balls, render handles and the running flag
// Not safe for concurrent use; every method runs on the loop goroutine
type Game struct {
	cfg config.Config

	backend  render.Backend
	window   render.Window
	renderer render.Renderer
	input    input.Source
	clock    Clock
	rand     RandSource
	logger   *log.Logger

	sessionID  string
	phase      Phase
	running    bool
	stopReason StopReason
	lastTicks  uint32

	left  Paddle
	right Paddle
	balls []Ball

	stats Stats
}

// Option customizes a Game at construction
type Option func(*Game)

// WithClock replaces the monotonic clock
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithRand replaces the time-seeded generator
func WithRand(r RandSource) Option {
	return func(g *Game) { g.rand = r }
}

// WithLogger replaces the default logger
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithSessionID overrides the generated session ID
func WithSessionID(id string) Option {
	return func(g *Game) { g.sessionID = id }
}

// New creates a session and seeds cfg.BallCount balls at the window center
func New(cfg config.Config, backend render.Backend, in input.Source, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		backend: backend,
		input:   in,
		running: true,
		balls:   make([]Ball, 0, cfg.BallCount),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.clock == nil {
		g.clock = NewMonotonicClock()
	}
	if g.rand == nil {
		g.rand = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if g.sessionID == "" {
		g.sessionID = uuid.NewString()
	}
	if g.logger == nil {
		g.logger = log.New(log.Writer(), fmt.Sprintf("[session %s] ", shortID(g.sessionID)), log.Flags())
	}

	cx, cy := float64(cfg.Width)/2, float64(cfg.Height)/2
	for i := 0; i < cfg.BallCount; i++ {
		g.SpawnBall(cx, cy)
	}

	return g
}

// Initialize acquires the window and renderer and centers both paddles
// Nothing acquired is released on failure; the caller abandons the session
func (g *Game) Initialize() error {
	if g.phase != PhaseCreated {
		return ErrAlreadyInitialized
	}

	window, err := g.backend.CreateWindow(g.cfg.Title, g.cfg.WindowX, g.cfg.WindowY, g.cfg.Width, g.cfg.Height, 0)
	if err != nil {
		g.logger.Printf("Failed to create window: %v", err)
		return &InitError{Stage: StageWindow, Err: err}
	}
	g.window = window

	renderer, err := window.CreateRenderer(render.DefaultDriver, render.RendererAccelerated|render.RendererPresentVSync)
	if err != nil {
		g.logger.Printf("Failed to create renderer: %v", err)
		return &InitError{Stage: StageRenderer, Err: err}
	}
	g.renderer = renderer

	midY := float64(g.cfg.Height) / 2
	g.left.Pos = vmath.V2(g.cfg.PaddleOffset, midY)
	g.right.Pos = vmath.V2(float64(g.cfg.Width)-g.cfg.PaddleOffset-float64(g.cfg.WallThickness), midY)

	g.phase = PhaseInitialized
	g.logger.Printf("Initialized %dx%d surface, %d balls", g.cfg.Width, g.cfg.Height, len(g.balls))
	return nil
}

// RunLoop runs frames until the running flag is cleared
// Returns immediately unless Initialize succeeded
func (g *Game) RunLoop() {
	if g.phase != PhaseInitialized {
		return
	}
	g.phase = PhaseRunning

	for g.running {
		g.frame()
	}

	g.phase = PhaseStopped
}

// frame is one loop iteration; a stop raised mid-frame still renders this frame
func (g *Game) frame() {
	g.processInput()
	g.updateGame()
	g.generateOutput()
}

// Shutdown releases the renderer, the window and the backend
func (g *Game) Shutdown() {
	if g.renderer != nil {
		g.renderer.Destroy()
		g.renderer = nil
	}
	if g.window != nil {
		g.window.Destroy()
		g.window = nil
	}
	g.backend.Quit()

	g.logger.Printf("Shutdown after %d frames (reason: %s, removed: %d, paddle bounces: %d, wall bounces: %d)",
		g.stats.Frames, g.stopReason, g.stats.BallsRemoved, g.stats.PaddleBounces, g.stats.WallBounces)
}

// shortID trims a UUID to its first group for log prefixes
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
