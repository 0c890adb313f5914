// internal/render/runner.go
package render

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/input-remapper/internal/logging"
	"github.com/tamzrod/input-remapper/internal/profile"
)

// Run waits for the table to be published, opens the display once and then
// redraws until ctx ends. Only a missing profile stops the loop.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.waitReady(ctx); err != nil {
		return err
	}

	d := l.view.Table().Display()
	out, err := l.open(d)
	if err != nil {
		return fmt.Errorf("render: open display: %w", err)
	}
	l.out = out
	logging.Info("Display ready",
		zap.String("type", d.Type),
		zap.Int16("width", d.Width),
		zap.Int16("height", d.Height),
	)

	var tick <-chan time.Time
	if l.cfg.Interval > 0 {
		ticker := time.NewTicker(l.cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	failing := false

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		} else {
			// let the other loop run on single-core schedulers
			runtime.Gosched()
		}

		_, err := l.RenderOnce()
		switch {
		case err == nil:
			if failing {
				logging.Info("Display recovered")
				failing = false
			}
		case errors.Is(err, profile.ErrProfileMissing):
			logging.Error("Profile table invariant violated", zap.Error(err))
			return err
		default:
			if !failing {
				logging.Warn("Render failed", zap.Error(err))
				failing = true
			}
		}
	}
}

// waitReady sleeps and rechecks until the table is published.
func (l *Loop) waitReady(ctx context.Context) error {
	for !l.view.Ready() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.cfg.ReadyPoll):
		}
	}
	return nil
}
