// Package state holds the only data shared between the acquisition and
// render goroutines.
//
// Each field is independently atomic and has exactly one writer, the
// acquisition goroutine. Readers may observe input and output from two
// different acquisition iterations; the pair converges on the next
// iteration. There is deliberately no lock: the acquisition goroutine must
// never wait on a reader.
package state

import (
	"sync/atomic"

	"github.com/tamzrod/input-remapper/internal/hw"
	"github.com/tamzrod/input-remapper/internal/profile"
)

// View is the read-only face of Live handed to readers.
type View interface {
	Input() uint32
	Output() uint32
	ProfileID() uint8
	Ready() bool
	Table() *profile.Table
}

// Live is the shared state. The zero value is not ready; use New.
type Live struct {
	input     atomic.Uint32
	output    atomic.Uint32
	profileID atomic.Uint32
	ready     atomic.Bool
	table     atomic.Pointer[profile.Table]
}

// New returns live state positioned on the passthrough profile.
func New() *Live {
	l := &Live{}
	l.profileID.Store(hw.PassthroughID)
	return l
}

// ---- writer side (acquisition only) ----

func (l *Live) SetInput(v uint32)  { l.input.Store(v) }
func (l *Live) SetOutput(v uint32) { l.output.Store(v) }

func (l *Live) SetProfileID(id uint8) { l.profileID.Store(uint32(id)) }

// Publish hands the fully built table to readers and marks configuration
// ready. The table store happens before the ready store, so a reader that
// observes Ready() also observes the table. Only the first call has effect.
func (l *Live) Publish(t *profile.Table) bool {
	if t == nil || !l.table.CompareAndSwap(nil, t) {
		return false
	}
	l.ready.Store(true)
	return true
}

// ---- reader side ----

func (l *Live) Input() uint32    { return l.input.Load() }
func (l *Live) Output() uint32   { return l.output.Load() }
func (l *Live) ProfileID() uint8 { return uint8(l.profileID.Load()) }
func (l *Live) Ready() bool      { return l.ready.Load() }

// Table returns the published table, or nil before Publish.
func (l *Live) Table() *profile.Table { return l.table.Load() }

var _ View = (*Live)(nil)
