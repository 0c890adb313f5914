// internal/mirror/writer.go
package mirror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/input-remapper/internal/status"
)

// RegisterWriter is the delivery contract for the status block.
type RegisterWriter interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

// Config places the status block on the target device.
type Config struct {
	UnitID  uint8
	Address uint16
}

// Writer mirrors snapshots into a holding register block.
// It writes verbatim: no logic, no interpretation.
type Writer struct {
	cfg Config
	cli RegisterWriter

	needFull bool
	last     []uint16
}

// NewWriter builds a writer. The first successful write re-asserts the
// full block.
func NewWriter(cfg Config, cli RegisterWriter) (*Writer, error) {
	if cli == nil {
		return nil, errors.New("mirror: register writer required")
	}
	if int(cfg.Address)+status.SlotsPerBlock > 0x10000 {
		return nil, fmt.Errorf("mirror: block at %d overflows the register space", cfg.Address)
	}
	return &Writer{
		cfg:      cfg,
		cli:      cli,
		needFull: true,
	}, nil
}

// WriteStatus delivers one snapshot.
// On any write failure, the next successful call re-asserts the full block.
func (w *Writer) WriteStatus(s status.Snapshot) error {
	regs := status.Encode(s)

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if w.needFull {
		if err := w.cli.WriteRegisters(w.cfg.UnitID, w.cfg.Address, regs); err != nil {
			return fmt.Errorf("mirror: full block write failed: %w", err)
		}
		w.needFull = false
		w.last = regs
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: one write per contiguous run of changed slots
	// ------------------------------------------------------------
	var errs []string

	for _, r := range changedRuns(w.last, regs) {
		if err := w.cli.WriteRegisters(
			w.cfg.UnitID,
			w.cfg.Address+uint16(r.start),
			regs[r.start:r.end],
		); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d-%d write failed: %v", r.start, r.end-1, err))
			continue
		}
		copy(w.last[r.start:r.end], regs[r.start:r.end])
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next success.
		w.needFull = true
		return errors.New("mirror: " + strings.Join(errs, " | "))
	}

	return nil
}

type run struct {
	start, end int
}

// changedRuns returns the half-open ranges where prev and next differ.
func changedRuns(prev, next []uint16) []run {
	var out []run
	start := -1
	for i := range next {
		same := i < len(prev) && prev[i] == next[i]
		switch {
		case !same && start < 0:
			start = i
		case same && start >= 0:
			out = append(out, run{start, i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, run{start, len(next)})
	}
	return out
}
