package engine

import "github.com/lixenwraith/multi-pong/vmath"

// Ball is a point mass rendered as a square; identity is its index in the collection
type Ball struct {
	Pos vmath.Vector2
	Vel vmath.Vector2
}

// Paddle moves on y only; Dir is -1 (up), 0, or +1 (down)
type Paddle struct {
	Pos vmath.Vector2
	Dir int
}

// Phase is the session lifecycle: Created -> Initialized -> Running -> Stopped
type Phase uint8

const (
	PhaseCreated Phase = iota
	PhaseInitialized
	PhaseRunning
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhaseInitialized:
		return "initialized"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// StopReason records the first condition that cleared the running flag
type StopReason uint8

const (
	StopNone StopReason = iota
	StopQuitEvent
	StopQuitKey
	StopNoBalls
)

func (r StopReason) String() string {
	switch r {
	case StopQuitEvent:
		return "quit event"
	case StopQuitKey:
		return "quit key"
	case StopNoBalls:
		return "no balls left"
	default:
		return "none"
	}
}

// Stats are per-session counters, logged at shutdown
type Stats struct {
	Frames        int
	BallsRemoved  int
	PaddleBounces int
	WallBounces   int
}

// Running reports the loop flag
func (g *Game) Running() bool {
	return g.running
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) StopReason() StopReason {
	return g.stopReason
}

func (g *Game) Stats() Stats {
	return g.stats
}

func (g *Game) SessionID() string {
	return g.sessionID
}

// Balls returns a copy of the ball collection in order
func (g *Game) Balls() []Ball {
	out := make([]Ball, len(g.balls))
	copy(out, g.balls)
	return out
}

// Ball returns the ball at index i
func (g *Game) Ball(i int) (Ball, bool) {
	if i < 0 || i >= len(g.balls) {
		return Ball{}, false
	}
	return g.balls[i], true
}

func (g *Game) BallCount() int {
	return len(g.balls)
}

func (g *Game) LeftPaddle() Paddle {
	return g.left
}

func (g *Game) RightPaddle() Paddle {
	return g.right
}

// stop clears the running flag; the first reason wins
func (g *Game) stop(reason StopReason) {
	if g.running {
		g.logger.Printf("Session stopping: %s", reason)
	}
	g.running = false
	if g.stopReason == StopNone {
		g.stopReason = reason
	}
}
