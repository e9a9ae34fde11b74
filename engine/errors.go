package engine

import (
	"errors"
	"fmt"
)

// ErrRenderInit matches every render surface acquisition failure
var ErrRenderInit = errors.New("render surface init failed")

// ErrAlreadyInitialized is returned by a second Initialize on the same session
var ErrAlreadyInitialized = errors.New("session already initialized")

// InitStage names the collaborator call that failed
type InitStage string

const (
	StageWindow   InitStage = "window"
	StageRenderer InitStage = "renderer"
)

// InitError carries the failed stage and the collaborator's reason
type InitError struct {
	Stage InitStage
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%v: create %s: %v", ErrRenderInit, e.Stage, e.Err)
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As
func (e *InitError) Unwrap() []error {
	return []error{ErrRenderInit, e.Err}
}
