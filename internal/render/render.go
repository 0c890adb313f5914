// internal/render/render.go
package render

import (
	"errors"
	"time"

	"github.com/tamzrod/input-remapper/internal/profile"
	"github.com/tamzrod/input-remapper/internal/state"
	"github.com/tamzrod/input-remapper/internal/status"
)

// Defaults.
const (
	DefaultReadyPoll = 10 * time.Millisecond
	DefaultInterval  = 33 * time.Millisecond
)

// Renderer draws one snapshot. It gives no feedback into the core beyond
// an error for logging.
type Renderer interface {
	Render(s status.Snapshot) error
}

// Opener initializes the display for the published settings. It is called
// once, after the table is ready.
type Opener func(d profile.Display) (Renderer, error)

// Config is the render loop configuration.
type Config struct {
	// ReadyPoll is the sleep between readiness checks.
	ReadyPoll time.Duration

	// Interval is the minimum time between two redraws. 0 redraws as fast
	// as the renderer allows.
	Interval time.Duration

	// RedrawUnchanged disables the change-detection guard.
	RedrawUnchanged bool
}

// Loop reflects the live state to a renderer. It only ever holds a
// read-only view.
type Loop struct {
	cfg  Config
	view state.View
	open Opener

	out  Renderer
	last status.Snapshot
	drew bool
}

// New creates a render loop with immutable config.
func New(cfg Config, view state.View, open Opener) (*Loop, error) {
	if view == nil {
		return nil, errors.New("render: view required")
	}
	if open == nil {
		return nil, errors.New("render: opener required")
	}
	if cfg.Interval < 0 {
		return nil, errors.New("render: interval must be >= 0")
	}
	if cfg.ReadyPoll <= 0 {
		cfg.ReadyPoll = DefaultReadyPoll
	}
	return &Loop{cfg: cfg, view: view, open: open}, nil
}

// RenderOnce captures the live state and forwards it to the renderer.
// It reports whether a redraw happened.
func (l *Loop) RenderOnce() (bool, error) {
	if l.out == nil {
		return false, errors.New("render: display not open")
	}

	s, err := status.Capture(l.view)
	if err != nil {
		return false, err
	}

	if l.drew && !l.cfg.RedrawUnchanged && s == l.last {
		return false, nil
	}

	if err := l.out.Render(s); err != nil {
		return false, err
	}
	l.last = s
	l.drew = true
	return true, nil
}
