package engine

import (
	"github.com/lixenwraith/multi-pong/constant"
	"github.com/lixenwraith/multi-pong/vmath"
)

// SpawnBall appends a ball at (x, y) with x-velocity ±BallSpeed and y-velocity in [-100, -1]
// Sign is drawn before the y component
func (g *Game) SpawnBall(x, y float64) {
	vx := g.cfg.BallSpeed
	if g.rand.Intn(2) != 0 {
		vx = -vx
	}
	vy := float64(g.rand.Intn(constant.BallVelYRange) - constant.BallVelYRange)
	g.SpawnBallWithVelocity(x, y, vx, vy)
}

// SpawnBallWithVelocity appends a ball with an explicit velocity
func (g *Game) SpawnBallWithVelocity(x, y, vx, vy float64) {
	g.balls = append(g.balls, Ball{
		Pos: vmath.V2(x, y),
		Vel: vmath.V2(vx, vy),
	})
}
