//go:build !tinygo && cgo

package sim

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tamzrod/input-remapper/internal/hw"
)

// Keymap binds keys to input positions.
type Keymap map[ebiten.Key]int

// DefaultKeymap follows the fightstick output layout so that the
// passthrough profile lights the matching indicator.
func DefaultKeymap() Keymap {
	m := Keymap{
		ebiten.KeyArrowLeft:  12,
		ebiten.KeyArrowRight: 13,
		ebiten.KeyArrowDown:  14,
		ebiten.KeyArrowUp:    15,

		ebiten.KeyU: 8, ebiten.KeyI: 7, ebiten.KeyO: 6, ebiten.KeyP: 5,
		ebiten.KeyJ: 4, ebiten.KeyK: 3, ebiten.KeyL: 2, ebiten.KeySemicolon: 1,

		ebiten.KeyEnter:     9,
		ebiten.KeyH:         10,
		ebiten.KeyBackspace: 11,
		ebiten.KeyZ:         16,
		ebiten.KeyX:         17,
		ebiten.KeyT:         hw.TurboPosition,

		ebiten.KeyTab: hw.UnlockPosition,
		ebiten.KeyQ:   hw.PrevPosition,
		ebiten.KeyE:   hw.NextPosition,
	}

	// spare inputs 19-29 on the digit row
	digits := []ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
		ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0,
		ebiten.KeyMinus,
	}
	for i, k := range digits {
		m[k] = 19 + i
	}
	return m
}

// Word builds the input word from the keys reported as pressed.
func (m Keymap) Word(pressed func(ebiten.Key) bool) uint32 {
	var w uint32
	for k, pos := range m {
		if pressed(k) {
			w |= hw.Bit(pos)
		}
	}
	return w
}
