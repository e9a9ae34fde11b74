package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/multi-pong/render"
)

// toTcell converts an RGBA draw color; alpha is dropped, terminals have no blending
func toTcell(c render.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// fromTcell converts back, treating ColorDefault as black
func fromTcell(c tcell.Color) render.Color {
	if c == tcell.ColorDefault {
		return render.Color{A: 255}
	}
	r, g, b := c.RGB()
	return render.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
