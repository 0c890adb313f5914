package acquire

import (
	"encoding/binary"
	"math/bits"

	"github.com/tamzrod/input-remapper/internal/hw"
)

// Frame converts an output word into the bytes clocked into the output
// shift registers: the word is byte-reversed, shifted right by 8 and the
// low three bytes are sent in little-endian memory order. The result is
// the low 24 bits of word, most significant byte first.
func Frame(word uint32) [hw.FrameBytes]byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], bits.ReverseBytes32(word)>>8)

	var f [hw.FrameBytes]byte
	copy(f[:], buf[:hw.FrameBytes])
	return f
}

// Unframe is the inverse of Frame for the 24 bits a frame carries.
func Unframe(f [hw.FrameBytes]byte) uint32 {
	return uint32(f[0])<<16 | uint32(f[1])<<8 | uint32(f[2])
}
