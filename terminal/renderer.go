package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/multi-pong/render"
)

// halfBlock draws the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// Renderer rasterizes logical rects into a pixel grid of cols x 2*rows
// The grid is re-sized to the screen at every Clear
type Renderer struct {
	screen   tcell.Screen
	logicalW int
	logicalH int

	color  render.Color
	cols   int
	rows   int
	pixels []render.Color

	destroyed bool
}

func newRenderer(screen tcell.Screen, w, h int) *Renderer {
	r := &Renderer{
		screen:   screen,
		logicalW: w,
		logicalH: h,
	}
	r.syncSize()
	return r
}

// syncSize follows terminal resizes
func (r *Renderer) syncSize() {
	cols, rows := r.screen.Size()
	if cols == r.cols && rows == r.rows && r.pixels != nil {
		return
	}
	r.cols, r.rows = cols, rows
	r.pixels = make([]render.Color, cols*rows*2)
}

func (r *Renderer) SetDrawColor(c render.Color) {
	r.color = c
}

func (r *Renderer) Clear() {
	if r.destroyed {
		return
	}
	r.syncSize()
	for i := range r.pixels {
		r.pixels[i] = r.color
	}
}

// FillRect paints every pixel whose logical area the rect touches
// Fully transparent colors draw nothing
func (r *Renderer) FillRect(rect render.Rect) {
	if r.destroyed || r.color.A == 0 {
		return
	}
	rect = rect.Intersect(render.Rect{W: r.logicalW, H: r.logicalH})
	if rect.Empty() {
		return
	}

	pw, ph := r.cols, r.rows*2
	x0 := rect.X * pw / r.logicalW
	x1 := ceilDiv((rect.X+rect.W)*pw, r.logicalW)
	y0 := rect.Y * ph / r.logicalH
	y1 := ceilDiv((rect.Y+rect.H)*ph, r.logicalH)

	for py := y0; py < y1 && py < ph; py++ {
		row := r.pixels[py*pw : (py+1)*pw]
		for px := x0; px < x1 && px < pw; px++ {
			row[px] = r.color
		}
	}
}

// Present copies the pixel grid to the screen and shows it
func (r *Renderer) Present() {
	if r.destroyed {
		return
	}
	pw := r.cols
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			top := r.pixels[(2*y)*pw+x]
			bottom := r.pixels[(2*y+1)*pw+x]
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			r.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	r.screen.Show()
}

func (r *Renderer) Destroy() {
	r.destroyed = true
	r.pixels = nil
}

// Pixel returns the buffered color at pixel (px, py); zero Color when out of range
func (r *Renderer) Pixel(px, py int) render.Color {
	pw, ph := r.cols, r.rows*2
	if px < 0 || py < 0 || px >= pw || py >= ph {
		return render.Color{}
	}
	return r.pixels[py*pw+px]
}

// PixelSize is the grid size in pixels: cols x 2*rows
func (r *Renderer) PixelSize() (int, int) {
	return r.cols, r.rows * 2
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
