package constant

import "github.com/lixenwraith/multi-pong/render"

// Draw colors
var (
	ColorBackground = render.Color{R: 0, G: 0, B: 255, A: 255}
	ColorWall       = render.Color{R: 0, G: 0, B: 0, A: 255}
	ColorEntity     = render.Color{R: 255, G: 255, B: 255, A: 255}
)
