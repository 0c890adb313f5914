// internal/status/encode.go
package status

// Encode converts a Snapshot into a full status block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerBlock)

	regs[SlotProfileID] = uint16(s.ProfileID)
	if s.Unlocked() {
		regs[SlotFlags] |= FlagUnlocked
	}
	regs[SlotInputHigh] = uint16(s.Input >> 16)
	regs[SlotInputLow] = uint16(s.Input)
	regs[SlotOutputHigh] = uint16(s.Output >> 16)
	regs[SlotOutputLow] = uint16(s.Output)
	regs[SlotLayout] = uint16(s.Layout)

	// Slots SlotReservedStart..SlotReservedEnd stay zero.

	copy(regs[SlotNameStart:SlotNameEnd+1], EncodeName(s.ProfileName))
	return regs
}

// EncodeName packs up to 16 ASCII characters into 8 registers.
// Each register stores two ASCII bytes in big-endian order.
func EncodeName(name string) []uint16 {
	out := make([]uint16, SlotNameSlots)

	b := []byte(name)
	if len(b) > NameMaxChars {
		b = b[:NameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < NameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
