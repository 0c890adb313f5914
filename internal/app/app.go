// Package app wires the acquisition loop, the render loop and the optional
// status mirror around one shared live state.
package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tamzrod/input-remapper/internal/acquire"
	"github.com/tamzrod/input-remapper/internal/config"
	"github.com/tamzrod/input-remapper/internal/logging"
	"github.com/tamzrod/input-remapper/internal/mirror"
	"github.com/tamzrod/input-remapper/internal/profile"
	"github.com/tamzrod/input-remapper/internal/render"
	"github.com/tamzrod/input-remapper/internal/state"
)

// MirrorOptions enables the status mirror.
type MirrorOptions struct {
	Writer   mirror.RegisterWriter
	Config   mirror.Config
	Interval time.Duration
}

// Options is everything Run needs. Only Transport is required.
type Options struct {
	// Store is read once at boot. Nil boots the passthrough profile only.
	Store config.Store

	Transport acquire.Transport
	Acquire   acquire.Config

	// Open initializes the display. Nil runs headless.
	Open   render.Opener
	Render render.Config

	// Mirror is optional.
	Mirror *MirrorOptions

	// Live lets callers observe the shared state. Nil creates one.
	Live *state.Live
}

// Run boots the profile table and runs every loop until ctx ends or an
// invariant is violated. Display and mirror failures are logged and do not
// stop remapping.
func Run(ctx context.Context, opts Options) error {
	if opts.Transport == nil {
		return errors.New("app: transport required")
	}

	live := opts.Live
	if live == nil {
		live = state.New()
	}

	table := profile.Boot(opts.Store)

	loop, err := acquire.New(opts.Acquire, table, live, opts.Transport)
	if err != nil {
		return err
	}

	var rl *render.Loop
	if opts.Open != nil {
		if rl, err = render.New(opts.Render, live, opts.Open); err != nil {
			return err
		}
	}

	var mw *mirror.Writer
	if m := opts.Mirror; m != nil {
		if mw, err = mirror.NewWriter(m.Config, m.Writer); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	// The render loop starts before the table is published and polls for
	// readiness on its own.
	if rl != nil {
		g.Go(func() error {
			return soft("render", rl.Run(gctx))
		})
	}

	live.Publish(table)
	logging.Info("Configuration ready", zap.Int("profiles", table.Len()))

	if mw != nil {
		interval := opts.Mirror.Interval
		g.Go(func() error {
			return soft("mirror", mirror.Run(gctx, mw, live, interval))
		})
	}

	g.Go(func() error {
		return quiet(loop.Run(gctx))
	})

	return g.Wait()
}

// soft keeps auxiliary loops from stopping the remapper. Only a missing
// profile escalates.
func soft(name string, err error) error {
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil
	case errors.Is(err, profile.ErrProfileMissing):
		return err
	default:
		logging.Warn("Auxiliary loop stopped", zap.String("loop", name), zap.Error(err))
		return nil
	}
}

func quiet(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
