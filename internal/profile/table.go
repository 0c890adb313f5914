package profile

import (
	"errors"
	"fmt"

	"github.com/tamzrod/input-remapper/internal/config"
	"github.com/tamzrod/input-remapper/internal/hw"
)

// ErrProfileMissing means the current profile id is absent from a published
// table. It indicates a corrupted publish and is fatal.
var ErrProfileMissing = errors.New("profile: current profile missing from table")

// Display carries the panel settings read alongside the profiles.
// Only the display renderer consumes it.
type Display struct {
	Address       uint16
	Type          string
	Width         int16
	Height        int16
	DefaultLayout uint8
}

// DefaultDisplay is used when no document could be loaded.
func DefaultDisplay() Display {
	return Display{
		Address: config.DefaultDisplayAddress,
		Type:    config.DefaultDisplayType,
		Width:   config.DefaultDisplayWidth,
		Height:  config.DefaultDisplayHeight,
	}
}

// Table is the immutable set of profiles, indexed by id.
// It has no mutators; build it with NewTable or Bind.
type Table struct {
	slots   [hw.MaxProfileID + 1]*Profile
	display Display
}

// NewTable builds a table from user profiles. Slot 1 is always the
// passthrough profile; a profile claiming id 1, 0 or an id above 9 is
// ignored.
func NewTable(display Display, users ...*Profile) *Table {
	t := &Table{display: display}
	t.slots[hw.PassthroughID] = NewPassthrough(display.DefaultLayout)

	for _, p := range users {
		if p == nil || p.ID < hw.FirstUserID || p.ID > hw.MaxProfileID {
			continue
		}
		t.slots[p.ID] = p
	}
	return t
}

// Get returns the profile for id.
func (t *Table) Get(id uint8) (*Profile, bool) {
	if int(id) >= len(t.slots) {
		return nil, false
	}
	p := t.slots[id]
	return p, p != nil
}

// MustGet returns the profile for id or ErrProfileMissing.
func (t *Table) MustGet(id uint8) (*Profile, error) {
	p, ok := t.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrProfileMissing, id)
	}
	return p, nil
}

// Has reports whether slot id is populated.
func (t *Table) Has(id uint8) bool {
	_, ok := t.Get(id)
	return ok
}

// Len returns the number of populated slots, passthrough included.
func (t *Table) Len() int {
	n := 0
	for _, p := range t.slots {
		if p != nil {
			n++
		}
	}
	return n
}

// Profiles returns the populated profiles in id order.
func (t *Table) Profiles() []*Profile {
	out := make([]*Profile, 0, len(t.slots))
	for _, p := range t.slots {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Display returns the panel settings carried with the table.
func (t *Table) Display() Display {
	return t.display
}
