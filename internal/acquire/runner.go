package acquire

import (
	"context"
	"errors"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/input-remapper/internal/logging"
	"github.com/tamzrod/input-remapper/internal/profile"
)

// Run iterates until ctx ends or a fatal invariant violation occurs.
// Transport failures are logged once per failure streak and do not stop
// the loop.
func (l *Loop) Run(ctx context.Context) error {
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

		_, err := l.Step()
		switch {
		case err == nil:
			if failing {
				logging.Info("Transport recovered")
				failing = false
			}
		case errors.Is(err, profile.ErrProfileMissing):
			logging.Error("Profile table invariant violated", zap.Error(err))
			return err
		default:
			if !failing {
				logging.LogTransportError("step", err)
				failing = true
			}
		}
	}
}
