package profile

import (
	"sort"

	"github.com/tamzrod/input-remapper/internal/hw"
)

const (
	// DefaultName labels a profile whose document entry has no name.
	DefaultName = "Unnamed Profile"

	// PassthroughName labels the identity profile in slot 1.
	PassthroughName = "Passthrough (1:1)"
)

// Mapping maps a 1-based input position to the output bits it asserts.
type Mapping map[uint8]uint32

// Profile is one remap rule set.
//
// A Profile is immutable once built: the mask is derived in NewProfile and
// nothing can change the mapping afterwards, so the two never disagree.
type Profile struct {
	ID     uint8
	Name   string
	Layout uint8

	mapping     Mapping
	keys        []uint8
	mask        uint32
	passthrough bool
}

// NewProfile copies mapping and derives the mask.
func NewProfile(id uint8, name string, layout uint8, mapping Mapping) *Profile {
	if name == "" {
		name = DefaultName
	}

	p := &Profile{
		ID:      id,
		Name:    name,
		Layout:  layout,
		mapping: make(Mapping, len(mapping)),
	}
	for k, v := range mapping {
		p.mapping[k] = v
	}
	p.generateMask()
	return p
}

// NewPassthrough builds the identity profile for slot 1.
func NewPassthrough(layout uint8) *Profile {
	return NewProfile(hw.PassthroughID, PassthroughName, layout, nil)
}

// generateMask derives mask from mapping.
//
// Starting from every output position set, the bit of each mapped input is
// toggled (not cleared). Keys are unique, so every key flips exactly once.
func (p *Profile) generateMask() {
	p.keys = p.keys[:0]
	for k := range p.mapping {
		p.keys = append(p.keys, k)
	}
	sort.Slice(p.keys, func(i, j int) bool { return p.keys[i] < p.keys[j] })

	if len(p.mapping) == 0 {
		p.passthrough = true
		p.mask = 0
		return
	}

	mask := hw.OutputAllMask
	for _, k := range p.keys {
		mask ^= 1 << (k - 1)
	}
	p.mask = mask
	p.passthrough = false
}

// ProcessInputs applies the profile to one raw input word.
//
// Unmapped positions are copied through the mask. Each active mapped input
// ORs its whole output bitmask into the result, so overlapping outputs of
// simultaneously active inputs combine and evaluation order is irrelevant.
func (p *Profile) ProcessInputs(data uint32) uint32 {
	if p.passthrough {
		return data
	}

	out := data & p.mask
	for _, k := range p.keys {
		out |= p.mapping[k] * (data >> (k - 1) & 1)
	}
	return out
}

// Mask returns the derived pass-through mask. It is meaningless for a
// passthrough profile.
func (p *Profile) Mask() uint32 { return p.mask }

// IsPassthrough reports whether the profile is the identity.
func (p *Profile) IsPassthrough() bool { return p.passthrough }

// Output returns the output bits asserted by input position key.
func (p *Profile) Output(key uint8) (uint32, bool) {
	v, ok := p.mapping[key]
	return v, ok
}

// Keys returns the mapped input positions in ascending order.
func (p *Profile) Keys() []uint8 {
	return append([]uint8(nil), p.keys...)
}
