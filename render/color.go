package render

import "fmt"

// Color is an 8-bit RGBA draw color
type Color struct {
	R, G, B, A uint8
}

// Opaque reports alpha == 255
func (c Color) Opaque() bool {
	return c.A == 255
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}
