package vmath

// Vector2 is a 2D float64 vector, passed by value
type Vector2 struct {
	X, Y float64
}

// V2 is shorthand for Vector2{x, y}
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Integrate returns v advanced by vel over dt seconds, per axis
func (v Vector2) Integrate(vel Vector2, dt float64) Vector2 {
	return Vector2{v.X + vel.X*dt, v.Y + vel.Y*dt}
}
