// internal/mirror/runner.go
package mirror

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/input-remapper/internal/logging"
	"github.com/tamzrod/input-remapper/internal/profile"
	"github.com/tamzrod/input-remapper/internal/state"
	"github.com/tamzrod/input-remapper/internal/status"
)

// DefaultInterval is the mirror publish period.
const DefaultInterval = 250 * time.Millisecond

// Run publishes the live state every interval until ctx ends.
// The mirror is a reader: it never blocks the acquisition loop.
func Run(ctx context.Context, w *Writer, v state.View, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	failing := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		s, err := status.Capture(v)
		switch {
		case errors.Is(err, status.ErrNotReady):
			continue
		case errors.Is(err, profile.ErrProfileMissing):
			logging.Error("Mirror stopped", zap.Error(err))
			return err
		case err != nil:
			return err
		}

		if err := w.WriteStatus(s); err != nil {
			if !failing {
				logging.LogTransportError("mirror", err)
				failing = true
			}
			continue
		}
		if failing {
			logging.Info("Mirror recovered")
			failing = false
		}
	}
}
