// internal/status/constants.go
package status

// Status block layout constants.
// These values define the register protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerBlock is the fixed number of registers in one status block.
const SlotsPerBlock = 20

// ---- SLOT INDICES ----

// SlotProfileID holds the current profile id (1-9).
const SlotProfileID = 0

// SlotFlags holds status flags, see Flag* below.
const SlotFlags = 1

// SlotInputHigh and SlotInputLow hold the input word, high half first.
const SlotInputHigh = 2
const SlotInputLow = 3

// SlotOutputHigh and SlotOutputLow hold the output word, high half first.
const SlotOutputHigh = 4
const SlotOutputLow = 5

// SlotLayout holds the display layout of the current profile.
const SlotLayout = 6

// ---- RESERVED RANGE ----

// Slots 7–11 are reserved for future use.
const SlotReservedStart = 7
const SlotReservedEnd = 11

// ---- PROFILE NAME ----

// SlotNameStart is the first slot used for the profile name.
// The name is always placed at the END of the block.
const SlotNameStart = 12

// SlotNameSlots is the number of slots reserved for the profile name.
const SlotNameSlots = 8

// SlotNameEnd is the last slot used for the name (inclusive).
const SlotNameEnd = SlotNameStart + SlotNameSlots - 1

// ---- LIMITS ----

// NameMaxChars is the maximum number of ASCII characters stored for the name.
const NameMaxChars = 16

// ---- FLAGS ----

// FlagUnlocked is set while the navigation gate is held.
const FlagUnlocked uint16 = 1 << 0
