package terminal

import (
	"fmt"

	"github.com/lixenwraith/multi-pong/render"
)

// minColors is the palette size needed to tell background, walls and entities apart
const minColors = 8

// Window is the terminal screen viewed as a fixed-size logical surface
type Window struct {
	backend   *Backend
	title     string
	width     int
	height    int
	renderer  *Renderer
	destroyed bool
}

// CreateRenderer binds a half-block renderer to the screen
// Only the default driver (-1 or 0) exists
func (w *Window) CreateRenderer(driverIndex int, flags render.RendererFlags) (render.Renderer, error) {
	if w.destroyed {
		return nil, ErrNoWindow
	}
	if driverIndex != render.DefaultDriver && driverIndex != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoDriver, driverIndex)
	}

	screen := w.backend.Screen()
	if n := screen.Colors(); n < minColors {
		return nil, fmt.Errorf("%w: terminal reports %d colors", ErrNoColor, n)
	}

	w.renderer = newRenderer(screen, w.width, w.height)
	return w.renderer, nil
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

func (w *Window) Title() string {
	return w.title
}

// Destroy blanks the screen; the backend keeps it until Quit
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	if screen := w.backend.Screen(); screen != nil {
		screen.Clear()
		screen.Show()
	}
}
