// Package hw holds the bit layout of the remapper board.
// These values describe the hardware and MUST NOT be configurable.
package hw

// ---- WORD GEOMETRY ----

// InputBits is the width of one input snapshot.
const InputBits = 32

// OutputTotal is the count of meaningful output bit positions.
const OutputTotal = 17

// OutputAllMask has every output position set.
const OutputAllMask uint32 = 1<<OutputTotal - 1

// FrameBytes is the size of one output shift-register frame.
const FrameBytes = 3

// ---- CONTROL POSITIONS (1-based) ----

// Positions 30-32 never reach a mapping. Position 0 does not exist.

// ReservedStart is the first reserved input position.
const ReservedStart = 30

// UnlockPosition gates profile navigation.
const UnlockPosition = 30

// PrevPosition selects the previous profile while unlocked.
const PrevPosition = 31

// NextPosition selects the next profile while unlocked.
const NextPosition = 32

// TurboPosition is the output position shown as "TPK" on the display.
const TurboPosition = 18

// ---- PROFILE SLOTS ----

// PassthroughID is the mandatory identity profile.
const PassthroughID = 1

// FirstUserID is the first slot filled from the profile document.
const FirstUserID = 2

// MaxProfileID is the last profile slot.
const MaxProfileID = 9

// MaxUserProfiles is the number of slots available to the document.
const MaxUserProfiles = MaxProfileID - FirstUserID + 1

// Bit returns the mask for a 1-based position. Position 0 yields 0.
func Bit(position int) uint32 {
	if position < 1 || position > InputBits {
		return 0
	}
	return 1 << (position - 1)
}

// Active reports whether the 1-based position is set in word.
func Active(word uint32, position int) bool {
	return word&Bit(position) != 0
}
