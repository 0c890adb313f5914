package acquire

import (
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/input-remapper/internal/hw"
	"github.com/tamzrod/input-remapper/internal/logging"
	"github.com/tamzrod/input-remapper/internal/profile"
	"github.com/tamzrod/input-remapper/internal/state"
)

// Loop is the single authority over the current profile id. It is the only
// writer of the live state.
type Loop struct {
	cfg   Config
	table *profile.Table
	live  *state.Live
	tr    Transport

	deadline time.Time
}

// New creates a loop over an already built table.
func New(cfg Config, table *profile.Table, live *state.Live, tr Transport) (*Loop, error) {
	if table == nil {
		return nil, errors.New("acquire: table required")
	}
	if live == nil {
		return nil, errors.New("acquire: live state required")
	}
	if tr == nil {
		return nil, errors.New("acquire: transport required")
	}
	if cfg.Interval < 0 {
		return nil, errors.New("acquire: interval must be >= 0")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Loop{cfg: cfg, table: table, live: live, tr: tr}, nil
}

// Step performs exactly one iteration.
//
// A read failure leaves the live state untouched. A write failure is
// reported after the state has been published. An error wrapping
// profile.ErrProfileMissing is fatal.
func (l *Loop) Step() (Result, error) {
	in, err := l.tr.ReadInput()
	if err != nil {
		return Result{}, fmt.Errorf("acquire: read input: %w", err)
	}

	id := l.live.ProfileID()
	if in == l.live.Input() {
		return Result{Input: in, Output: l.live.Output(), ProfileID: id}, nil
	}

	res := Result{Input: in, Changed: true}
	logging.LogWord("Input", in)

	if next, ok := l.navigate(in, id); ok {
		p, err := l.table.MustGet(next)
		if err != nil {
			return res, err
		}
		logging.LogProfileSwitch(id, next, p.Name)
		l.live.SetProfileID(next)
		id = next
		res.Switched = true
	}
	res.ProfileID = id

	p, err := l.table.MustGet(id)
	if err != nil {
		return res, err
	}

	l.live.SetInput(in)
	res.Output = p.ProcessInputs(in)
	l.live.SetOutput(res.Output)
	logging.LogWord("Output", res.Output)

	if err := l.tr.WriteOutput(Frame(res.Output)); err != nil {
		return res, fmt.Errorf("acquire: write output: %w", err)
	}
	return res, nil
}

// navigate applies the control bits. Navigation needs the unlock bit and an
// elapsed debounce deadline; previous is checked before next and at most
// one move happens. Moves to empty slots are ignored.
func (l *Loop) navigate(in uint32, id uint8) (uint8, bool) {
	if !hw.Active(in, hw.UnlockPosition) {
		return id, false
	}

	now := l.cfg.Now()
	if now.Before(l.deadline) {
		return id, false
	}

	target := id
	switch {
	case hw.Active(in, hw.PrevPosition) && id > 1 && l.table.Has(id-1):
		target = id - 1
	case hw.Active(in, hw.NextPosition) && id < hw.MaxProfileID && l.table.Has(id+1):
		target = id + 1
	default:
		return id, false
	}

	l.deadline = now.Add(l.cfg.Debounce)
	return target, true
}
