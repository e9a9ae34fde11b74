// Package terminal implements the render and input collaborators on a tcell screen.
//
// The terminal stands in for a window: the logical surface (1024x768 by default) is
// scaled onto the cell grid with half-block glyphs, giving two pixels per cell
// vertically. Key events are latched into a held-key snapshot because terminals
// report presses and autorepeats but never releases.
package terminal
