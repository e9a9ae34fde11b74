package render

// Backend is the windowing/drawing subsystem
// Quit tears down everything the backend acquired; calling it twice is undefined
type Backend interface {
	CreateWindow(title string, x, y, w, h int, flags WindowFlags) (Window, error)
	Quit()
}

// Window is a drawable surface of fixed logical size
type Window interface {
	CreateRenderer(driverIndex int, flags RendererFlags) (Renderer, error)
	Size() (w, h int)
	Destroy()
}

// Renderer issues 2D primitives in logical window coordinates
// Drawing is buffered until Present
type Renderer interface {
	SetDrawColor(c Color)
	Clear()
	FillRect(r Rect)
	Present()
	Destroy()
}

// WindowFlags mirrors the usual window creation flags; zero means none
type WindowFlags uint32

const (
	WindowResizable WindowFlags = 1 << iota
	WindowBorderless
)

// RendererFlags selects renderer capabilities
type RendererFlags uint32

const (
	RendererAccelerated RendererFlags = 1 << iota
	RendererPresentVSync
)

// DefaultDriver lets the backend pick the first usable driver
const DefaultDriver = -1
