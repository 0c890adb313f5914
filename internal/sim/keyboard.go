// Package sim runs the remapper on a desktop: a window shows the display
// framebuffer and the keyboard stands in for the input shift registers.
package sim

import (
	"sync/atomic"

	"github.com/tamzrod/input-remapper/internal/acquire"
	"github.com/tamzrod/input-remapper/internal/hw"
)

// Keyboard is a Transport backed by a word set from the window goroutine.
type Keyboard struct {
	word   atomic.Uint32
	output atomic.Uint32
	writes atomic.Uint64
}

// NewKeyboard returns a keyboard with nothing pressed.
func NewKeyboard() *Keyboard { return &Keyboard{} }

// Set replaces the whole input word.
func (k *Keyboard) Set(word uint32) { k.word.Store(word) }

// Press asserts one input position.
func (k *Keyboard) Press(position int) {
	for {
		old := k.word.Load()
		if k.word.CompareAndSwap(old, old|hw.Bit(position)) {
			return
		}
	}
}

// Release clears one input position.
func (k *Keyboard) Release(position int) {
	for {
		old := k.word.Load()
		if k.word.CompareAndSwap(old, old&^hw.Bit(position)) {
			return
		}
	}
}

// ReadInput implements acquire.Transport.
func (k *Keyboard) ReadInput() (uint32, error) { return k.word.Load(), nil }

// WriteOutput implements acquire.Transport. The frame is kept for the
// window title and for tests.
func (k *Keyboard) WriteOutput(frame [hw.FrameBytes]byte) error {
	k.output.Store(acquire.Unframe(frame))
	k.writes.Add(1)
	return nil
}

// Output returns the last written output word.
func (k *Keyboard) Output() uint32 { return k.output.Load() }

// Writes returns the number of frames written.
func (k *Keyboard) Writes() uint64 { return k.writes.Load() }

var _ acquire.Transport = (*Keyboard)(nil)
