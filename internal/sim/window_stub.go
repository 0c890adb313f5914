//go:build !tinygo && !cgo

package sim

import (
	"context"
	"errors"

	"github.com/tamzrod/input-remapper/internal/display"
)

// DefaultScale is the window magnification of the 128x64 panel.
const DefaultScale = 4

// Window is unavailable without cgo.
type Window struct{}

// NewWindow returns a window whose Run always fails.
func NewWindow(_ context.Context, _ *display.Framebuffer, _ *Keyboard) *Window {
	return &Window{}
}

// Run reports that window mode needs cgo.
func (w *Window) Run(_ string, _ int) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}

// Title formats the window title for a build version.
func Title(version string) string {
	return "input-remapper (" + version + ")"
}
