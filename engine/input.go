package engine

import "github.com/lixenwraith/multi-pong/input"

// processInput drains discrete events, then reads held keys for quit and paddle direction
func (g *Game) processInput() {
	for {
		ev, ok := g.input.PollEvent()
		if !ok {
			break
		}
		if ev.Type == input.EventQuit {
			g.stop(StopQuitEvent)
		}
	}

	state := g.input.KeyboardState()
	if state.Pressed(input.KeyEscape) {
		g.stop(StopQuitKey)
	}

	g.left.Dir = paddleDirection(state, input.KeyW, input.KeyS)
	g.right.Dir = paddleDirection(state, input.KeyUp, input.KeyDown)
}

// paddleDirection accumulates -1 for up and +1 for down, so both held cancel out
func paddleDirection(state input.KeyboardState, up, down input.Key) int {
	dir := 0
	if state.Pressed(up) {
		dir--
	}
	if state.Pressed(down) {
		dir++
	}
	return dir
}
