// internal/status/snapshot.go
package status

import (
	"errors"

	"github.com/tamzrod/input-remapper/internal/hw"
	"github.com/tamzrod/input-remapper/internal/state"
)

// ErrNotReady is returned when the table has not been published yet.
var ErrNotReady = errors.New("status: configuration not ready")

// Snapshot is what readers of the live state are allowed to see.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Input       uint32
	Output      uint32
	ProfileID   uint8
	ProfileName string
	Layout      uint8
}

// Unlocked reports whether the navigation gate was held in Input.
func (s Snapshot) Unlocked() bool {
	return hw.Active(s.Input, hw.UnlockPosition)
}

// Capture reads the live state once. The fields are loaded one by one, so
// Input and Output may come from two different acquisition iterations.
func Capture(v state.View) (Snapshot, error) {
	if !v.Ready() {
		return Snapshot{}, ErrNotReady
	}

	id := v.ProfileID()
	p, err := v.Table().MustGet(id)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Input:       v.Input(),
		Output:      v.Output(),
		ProfileID:   id,
		ProfileName: p.Name,
		Layout:      p.Layout,
	}, nil
}
