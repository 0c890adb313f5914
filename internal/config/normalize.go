// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-load normalization.
// It is allowed to mutate configuration.
// It never drops profiles or mappings; binding decides what is kept.
func Normalize(doc *Document) {
	if doc == nil {
		return
	}

	d := &doc.Display
	d.Address = strings.TrimSpace(d.Address)
	d.Type = strings.ToLower(strings.TrimSpace(d.Type))
	d.Resolution = strings.ToLower(strings.TrimSpace(d.Resolution))

	for i := range doc.Profiles {
		p := &doc.Profiles[i]
		p.Name = strings.TrimSpace(p.Name)
	}
}
