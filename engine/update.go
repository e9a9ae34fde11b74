package engine

import (
	"slices"

	"github.com/lixenwraith/multi-pong/constant"
	"github.com/lixenwraith/multi-pong/vmath"
)

// updateGame throttles to the frame cap, derives the clamped delta and advances the simulation
func (g *Game) updateGame() {
	target := g.lastTicks + g.cfg.FrameInterval()
	for !TicksPassed(g.clock.Ticks(), target) {
		g.clock.SleepUntil(target)
	}

	now := g.clock.Ticks()
	deltaTime := float64(now-g.lastTicks) / 1000.0
	if deltaTime > g.cfg.MaxDeltaTime {
		deltaTime = g.cfg.MaxDeltaTime
	}
	g.lastTicks = now

	g.advance(deltaTime)
}

// advance moves paddles and balls by dt seconds and resolves collisions
func (g *Game) advance(dt float64) {
	g.movePaddle(&g.left, dt)
	g.movePaddle(&g.right, dt)

	halfPaddle := g.cfg.PaddleHeight / 2
	width := float64(g.cfg.Width)
	thickness := float64(g.cfg.WallThickness)

	for i := 0; i < len(g.balls); {
		b := &g.balls[i]
		b.Pos = b.Pos.Integrate(b.Vel, dt)

		leftDiff := vmath.Abs(g.left.Pos.Y - b.Pos.Y)
		rightDiff := vmath.Abs(g.right.Pos.Y - b.Pos.Y)

		switch {
		case leftDiff <= halfPaddle &&
			vmath.InRange(b.Pos.X, constant.PaddleContactNear, constant.PaddleContactFar) &&
			b.Vel.X < 0:
			g.bouncePaddle(b)

		case rightDiff <= halfPaddle &&
			vmath.InRange(b.Pos.X, width-constant.PaddleContactFar, width-constant.PaddleContactNear) &&
			b.Vel.X > 0:
			g.bouncePaddle(b)

		case b.Pos.X <= 0 || b.Pos.X >= width-thickness:
			g.balls = slices.Delete(g.balls, i, i+1)
			g.stats.BallsRemoved++
			if len(g.balls) == 0 {
				g.stop(StopNoBalls)
				return
			}
			// The next ball shifted into i
			continue
		}

		if b.Pos.Y <= thickness && b.Vel.Y < 0 {
			b.Vel.Y *= -1
			g.stats.WallBounces++
		} else if b.Pos.Y >= float64(g.cfg.Height)-thickness && b.Vel.Y > 0 {
			b.Vel.Y *= -1
			g.stats.WallBounces++
		}

		i++
	}
}

// bouncePaddle reverses x-velocity; a ball at exactly y == 0 does not bounce
func (g *Game) bouncePaddle(b *Ball) {
	if b.Pos.Y != 0 {
		b.Vel.X *= -1
		g.stats.PaddleBounces++
	}
}

func (g *Game) movePaddle(p *Paddle, dt float64) {
	if p.Dir == 0 {
		return
	}
	p.Pos.Y += float64(p.Dir) * g.cfg.PaddleSpeed * dt
	p.Pos.Y = vmath.Clamp(p.Pos.Y, g.cfg.PaddleMinY(), g.cfg.PaddleMaxY())
}
