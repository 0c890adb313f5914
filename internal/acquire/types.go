package acquire

import (
	"time"

	"github.com/tamzrod/input-remapper/internal/hw"
)

// DefaultDebounce is the minimum spacing between two profile changes.
const DefaultDebounce = 200 * time.Millisecond

// Transport abstracts the input and output shift registers.
// The loop depends on words and frames only.
type Transport interface {
	// ReadInput returns one 32-bit input snapshot.
	ReadInput() (uint32, error)
	// WriteOutput drives one pre-reversed output frame.
	WriteOutput(frame [hw.FrameBytes]byte) error
}

// Config is the minimal runtime config the loop needs.
type Config struct {
	// Interval between iterations. Zero spins, which is what the firmware
	// does; host transports set a poll interval.
	Interval time.Duration

	// Debounce after a profile change. Zero means DefaultDebounce.
	Debounce time.Duration

	// Now is the clock used for debounce. Nil means time.Now.
	Now func() time.Time
}

// Result describes one iteration.
type Result struct {
	Input     uint32
	Output    uint32
	ProfileID uint8

	// Changed is false when the input matched the last published word and
	// the iteration did nothing.
	Changed bool

	// Switched is true when this iteration moved to another profile.
	Switched bool
}
