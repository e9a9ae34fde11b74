package engine

import (
	"github.com/lixenwraith/multi-pong/constant"
	"github.com/lixenwraith/multi-pong/render"
)

// generateOutput draws the frame in fixed order; reads state only
func (g *Game) generateOutput() {
	r := g.renderer
	t := g.cfg.WallThickness
	w, h := g.cfg.Width, g.cfg.Height

	r.SetDrawColor(constant.ColorBackground)
	r.Clear()

	r.SetDrawColor(constant.ColorWall)
	r.FillRect(render.Rect{X: 0, Y: 0, W: w, H: t})
	r.FillRect(render.Rect{X: 0, Y: h - t, W: w, H: t})

	r.SetDrawColor(constant.ColorEntity)
	r.FillRect(g.paddleRect(g.left))
	r.FillRect(g.paddleRect(g.right))

	for _, b := range g.balls {
		r.FillRect(g.ballRect(b))
	}

	r.Present()
	g.stats.Frames++
}

func (g *Game) paddleRect(p Paddle) render.Rect {
	return render.Rect{
		X: int(p.Pos.X),
		Y: int(p.Pos.Y - g.cfg.PaddleHeight/2),
		W: g.cfg.WallThickness,
		H: int(g.cfg.PaddleHeight),
	}
}

// ballRect centers a thickness-sized square on the ball, offset by the integer half size
func (g *Game) ballRect(b Ball) render.Rect {
	t := g.cfg.WallThickness
	half := float64(t / 2)
	return render.Rect{
		X: int(b.Pos.X - half),
		Y: int(b.Pos.Y - half),
		W: t,
		H: t,
	}
}
