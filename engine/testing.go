package engine

import (
	"github.com/lixenwraith/multi-pong/input"
	"github.com/lixenwraith/multi-pong/render"
)

// DrawOp identifies a recorded renderer call
type DrawOp uint8

const (
	OpSetColor DrawOp = iota
	OpClear
	OpFillRect
	OpPresent
)

// DrawCall is one recorded renderer call
type DrawCall struct {
	Op    DrawOp
	Color render.Color
	Rect  render.Rect
}

// RecordingBackend is an in-memory render.Backend for tests
// Set WindowErr or RendererErr to simulate acquisition failures
type RecordingBackend struct {
	WindowErr   error
	RendererErr error

	Title         string
	Width, Height int
	Flags         render.RendererFlags
	Calls         []DrawCall

	WindowDestroyed   bool
	RendererDestroyed bool
	QuitCalled        bool
}

func (b *RecordingBackend) CreateWindow(title string, x, y, w, h int, flags render.WindowFlags) (render.Window, error) {
	if b.WindowErr != nil {
		return nil, b.WindowErr
	}
	b.Title, b.Width, b.Height = title, w, h
	return &recordingWindow{b: b}, nil
}

func (b *RecordingBackend) Quit() {
	b.QuitCalled = true
}

// Frames splits recorded calls at each Present, dropping a trailing open frame
func (b *RecordingBackend) Frames() [][]DrawCall {
	var frames [][]DrawCall
	start := 0
	for i, c := range b.Calls {
		if c.Op == OpPresent {
			frames = append(frames, b.Calls[start:i+1])
			start = i + 1
		}
	}
	return frames
}

// FilledRects returns the FillRect rects of a frame in order
func FilledRects(frame []DrawCall) []render.Rect {
	var rects []render.Rect
	for _, c := range frame {
		if c.Op == OpFillRect {
			rects = append(rects, c.Rect)
		}
	}
	return rects
}

type recordingWindow struct {
	b *RecordingBackend
}

func (w *recordingWindow) CreateRenderer(driverIndex int, flags render.RendererFlags) (render.Renderer, error) {
	if w.b.RendererErr != nil {
		return nil, w.b.RendererErr
	}
	w.b.Flags = flags
	return &recordingRenderer{b: w.b}, nil
}

func (w *recordingWindow) Size() (int, int) {
	return w.b.Width, w.b.Height
}

func (w *recordingWindow) Destroy() {
	w.b.WindowDestroyed = true
}

type recordingRenderer struct {
	b     *RecordingBackend
	color render.Color
}

func (r *recordingRenderer) SetDrawColor(c render.Color) {
	r.color = c
	r.b.Calls = append(r.b.Calls, DrawCall{Op: OpSetColor, Color: c})
}

func (r *recordingRenderer) Clear() {
	r.b.Calls = append(r.b.Calls, DrawCall{Op: OpClear, Color: r.color})
}

func (r *recordingRenderer) FillRect(rect render.Rect) {
	r.b.Calls = append(r.b.Calls, DrawCall{Op: OpFillRect, Color: r.color, Rect: rect})
}

func (r *recordingRenderer) Present() {
	r.b.Calls = append(r.b.Calls, DrawCall{Op: OpPresent})
}

func (r *recordingRenderer) Destroy() {
	r.b.RendererDestroyed = true
}

// ScriptedInput replays queued events and per-frame keyboard snapshots
// After the script runs out, State is returned
type ScriptedInput struct {
	Events []input.Event
	Script []input.KeyboardState
	State  input.KeyboardState

	Polls int
}

func (s *ScriptedInput) PollEvent() (input.Event, bool) {
	s.Polls++
	if len(s.Events) == 0 {
		return input.Event{}, false
	}
	ev := s.Events[0]
	s.Events = s.Events[1:]
	return ev, true
}

func (s *ScriptedInput) KeyboardState() input.KeyboardState {
	if len(s.Script) == 0 {
		return s.State
	}
	st := s.Script[0]
	s.Script = s.Script[1:]
	return st
}
