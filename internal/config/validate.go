// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/tamzrod/input-remapper/internal/hw"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
//
// Every problem found is reported; none of them is fatal at boot, where the
// offending entries are dropped instead. The joined error exists for
// diagnostics and for `remapper check`.
func Validate(doc *Document) error {
	if doc == nil {
		return ErrNoDocument
	}

	errs := append([]error(nil), doc.issues...)
	errs = append(errs, doc.Display.issues...)

	// ------------------------------------------------------------
	// DISPLAY
	// ------------------------------------------------------------

	if _, err := ParseAddress(doc.Display.Address); err != nil {
		errs = append(errs, err)
	}
	if _, _, err := ParseResolution(doc.Display.Resolution); err != nil {
		errs = append(errs, err)
	}
	if t := doc.Display.Type; t != "" && t != DefaultDisplayType {
		errs = append(errs, fmt.Errorf(
			"display type %q: unsupported, %s driver will be used",
			t, DefaultDisplayType,
		))
	}

	// ------------------------------------------------------------
	// PROFILE COUNT
	// ------------------------------------------------------------

	if len(doc.Profiles) > hw.MaxUserProfiles {
		errs = append(errs, fmt.Errorf(
			"%d profiles defined, only the first %d are loaded",
			len(doc.Profiles), hw.MaxUserProfiles,
		))
	}

	// ------------------------------------------------------------
	// MAPPINGS
	// ------------------------------------------------------------

	for pi, p := range doc.Profiles {
		if pi >= hw.MaxUserProfiles {
			break
		}
		label := p.Name
		if label == "" {
			label = fmt.Sprintf("#%d", pi+1)
		}

		for _, err := range p.issues {
			errs = append(errs, fmt.Errorf("profile %q %w", label, err))
		}

		seen := make(map[int]int)

		for mi, m := range p.Mappings {
			if !m.Valid {
				errs = append(errs, fmt.Errorf(
					"profile %q mapping %d: expected [input, [outputs...]]",
					label, mi,
				))
				continue
			}

			if m.Input < 1 || m.Input >= hw.ReservedStart {
				errs = append(errs, fmt.Errorf(
					"profile %q mapping %d: input %d is reserved or out of range (1-%d)",
					label, mi, m.Input, hw.ReservedStart-1,
				))
				continue
			}

			if prev, dup := seen[m.Input]; dup {
				errs = append(errs, fmt.Errorf(
					"profile %q mapping %d: input %d already mapped by mapping %d, last one wins",
					label, mi, m.Input, prev,
				))
			}
			seen[m.Input] = mi

			for _, o := range m.Outputs {
				if o < 1 || o > hw.OutputTotal {
					errs = append(errs, fmt.Errorf(
						"profile %q mapping %d: output %d out of range (1-%d), dropped",
						label, mi, o, hw.OutputTotal,
					))
				}
			}
		}
	}

	return errors.Join(errs...)
}
