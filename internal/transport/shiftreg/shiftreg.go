// Package shiftreg drives the input and output shift-register chains over
// one shared SPI bus.
package shiftreg

import (
	"encoding/binary"
	"errors"
	"fmt"

	"tinygo.org/x/drivers"

	"github.com/tamzrod/input-remapper/internal/hw"
)

// Pin is a push-pull output line. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// Pins are the chip-select and latch lines of both chains.
type Pins struct {
	InputCE    Pin
	InputLatch Pin
	OutputCE   Pin
	OutputSS   Pin
}

// Config holds the bus and optional per-direction hooks. BeginRead and
// BeginWrite run before each transfer and may reconfigure the bus (mode,
// frequency) for that chain.
type Config struct {
	Bus  drivers.SPI
	Pins Pins

	BeginRead  func() error
	BeginWrite func() error
}

// Bus is the hardware transport. It is owned by the acquisition goroutine.
type Bus struct {
	cfg Config

	rx [4]byte
	tx [4]byte
}

// New validates cfg and parks every select line high.
func New(cfg Config) (*Bus, error) {
	if cfg.Bus == nil {
		return nil, errors.New("shiftreg: spi bus required")
	}
	p := cfg.Pins
	if p.InputCE == nil || p.InputLatch == nil || p.OutputCE == nil || p.OutputSS == nil {
		return nil, errors.New("shiftreg: all select pins required")
	}

	p.InputLatch.High()
	p.InputCE.High()
	p.OutputCE.High()
	p.OutputSS.High()

	return &Bus{cfg: cfg}, nil
}

// ReadInput latches the input chain and clocks out 32 bits.
func (b *Bus) ReadInput() (uint32, error) {
	if b.cfg.BeginRead != nil {
		if err := b.cfg.BeginRead(); err != nil {
			return 0, fmt.Errorf("shiftreg: begin read: %w", err)
		}
	}

	p := b.cfg.Pins
	p.InputCE.Low()
	p.InputLatch.Low()
	p.InputLatch.High()

	b.tx = [4]byte{}
	err := b.cfg.Bus.Tx(b.tx[:], b.rx[:])

	p.InputCE.High()

	if err != nil {
		return 0, fmt.Errorf("shiftreg: read: %w", err)
	}
	return binary.LittleEndian.Uint32(b.rx[:]), nil
}

// WriteOutput shifts one frame into the output chain. The output CE line
// stays low afterwards, SS rising edge latches the frame.
func (b *Bus) WriteOutput(frame [hw.FrameBytes]byte) error {
	p := b.cfg.Pins
	p.OutputCE.Low()
	p.OutputSS.Low()

	if b.cfg.BeginWrite != nil {
		if err := b.cfg.BeginWrite(); err != nil {
			p.OutputSS.High()
			return fmt.Errorf("shiftreg: begin write: %w", err)
		}
	}

	err := b.cfg.Bus.Tx(frame[:], nil)

	p.OutputSS.High()

	if err != nil {
		return fmt.Errorf("shiftreg: write: %w", err)
	}
	return nil
}
