package profile

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tamzrod/input-remapper/internal/config"
	"github.com/tamzrod/input-remapper/internal/hw"
	"github.com/tamzrod/input-remapper/internal/logging"
)

// Bind converts a parsed document into a table.
//
// Binding never fails: reserved inputs and out-of-range outputs are dropped,
// profiles beyond the eighth are ignored and unparsable display fields fall
// back to defaults. Use config.Validate to see what was dropped.
func Bind(doc *config.Document) *Table {
	if doc == nil {
		return NewTable(DefaultDisplay())
	}

	display := bindDisplay(doc.Display)

	users := make([]*Profile, 0, hw.MaxUserProfiles)
	for i, pc := range doc.Profiles {
		if i >= hw.MaxUserProfiles {
			break
		}

		layout := display.DefaultLayout
		if pc.Layout != nil {
			layout = *pc.Layout
		}

		id := uint8(hw.FirstUserID + i)
		users = append(users, NewProfile(id, pc.Name, layout, bindMappings(pc.Mappings)))
	}

	return NewTable(display, users...)
}

func bindDisplay(dc config.DisplayConfig) Display {
	d := DefaultDisplay()

	if addr, err := config.ParseAddress(dc.Address); err == nil {
		d.Address = addr
	}
	if w, h, err := config.ParseResolution(dc.Resolution); err == nil {
		d.Width, d.Height = w, h
	}
	if dc.Type != "" {
		d.Type = dc.Type
	}
	if dc.DefaultLayout != nil {
		d.DefaultLayout = *dc.DefaultLayout
	}
	return d
}

func bindMappings(rows []config.MappingConfig) Mapping {
	m := make(Mapping, len(rows))
	for _, r := range rows {
		if !r.Valid {
			continue
		}
		if r.Input < 1 || r.Input >= hw.ReservedStart {
			continue
		}

		var value uint32
		for _, o := range r.Outputs {
			if o < 1 || o > hw.OutputTotal {
				continue
			}
			value |= 1 << (o - 1)
		}
		m[uint8(r.Input)] = value
	}
	return m
}

// Boot loads the document from store exactly once and builds the table.
// A failed load yields the passthrough-only table; it is never fatal.
func Boot(store config.Store) *Table {
	if store == nil {
		logging.Warn("No profile store configured, running passthrough only")
		return NewTable(DefaultDisplay())
	}

	doc, err := store.Load()
	if err != nil {
		if errors.Is(err, config.ErrNoDocument) {
			logging.Info("No profile document, running passthrough only")
		} else {
			logging.Warn("Profile document could not be loaded, running passthrough only",
				zap.Error(err),
			)
		}
		return NewTable(DefaultDisplay())
	}

	if err := config.Validate(doc); err != nil {
		logging.LogConfigIssue("profiles", err)
	}

	t := Bind(doc)
	for _, p := range t.Profiles() {
		logging.Info("Profile loaded",
			zap.Uint8("id", p.ID),
			zap.String("name", p.Name),
			zap.Uint8("layout", p.Layout),
			zap.Int("mappings", len(p.keys)),
		)
	}
	return t
}
