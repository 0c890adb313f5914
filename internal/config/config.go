// internal/config/config.go
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is one parsed profile document.
// JSON documents decode through the same path (JSON is a YAML subset).
//
// Decoding is lenient field by field: a wrong-typed field is left at its
// zero value and recorded, so one bad entry never costs the rest of the
// document. Validate reports the recorded issues.
type Document struct {
	Display  DisplayConfig   `yaml:"display"`
	Profiles []ProfileConfig `yaml:"profiles"`

	issues []error
}

// ---- DISPLAY ----

type DisplayConfig struct {
	Address       string `yaml:"address"` // hex, "0x3C" or "3C"
	DefaultLayout *uint8 `yaml:"default_layout"`
	Type          string `yaml:"type"`
	Resolution    string `yaml:"resolution"` // "128x64"

	issues []error
}

// ---- PROFILE ----

type ProfileConfig struct {
	Name     string          `yaml:"name"`
	Layout   *uint8          `yaml:"layout"`
	Mappings []MappingConfig `yaml:"mappings"`

	issues []error
}

// MappingConfig is one `[input, [outputs...]]` row.
// Rows that are not shaped like that decode with Valid=false
// instead of failing the whole document.
type MappingConfig struct {
	Input   int
	Outputs []int
	Valid   bool
}

// UnmarshalYAML decodes a mapping row leniently.
func (m *MappingConfig) UnmarshalYAML(node *yaml.Node) error {
	*m = MappingConfig{}

	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		return nil
	}

	var input int
	if err := node.Content[0].Decode(&input); err != nil {
		return nil
	}
	m.Input = input
	m.Valid = true

	if len(node.Content) < 2 {
		return nil
	}

	outs := node.Content[1]
	switch outs.Kind {
	case yaml.SequenceNode:
		for _, n := range outs.Content {
			var o int
			if err := n.Decode(&o); err != nil {
				continue
			}
			m.Outputs = append(m.Outputs, o)
		}
	case yaml.ScalarNode:
		var o int
		if err := outs.Decode(&o); err == nil {
			m.Outputs = append(m.Outputs, o)
		}
	}

	return nil
}

// UnmarshalYAML decodes the document leniently.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	*d = Document{}

	if node.Kind != yaml.MappingNode {
		d.issues = append(d.issues, errors.New("document: expected a mapping"))
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		v := deref(node.Content[i+1])
		switch node.Content[i].Value {
		case "display":
			if isNull(v) {
				continue
			}
			if err := v.Decode(&d.Display); err != nil {
				d.issues = append(d.issues, fmt.Errorf("display: %w", err))
			}
		case "profiles":
			if isNull(v) {
				continue
			}
			if v.Kind != yaml.SequenceNode {
				d.issues = append(d.issues, errors.New("profiles: expected a sequence, none loaded"))
				continue
			}
			d.Profiles = make([]ProfileConfig, len(v.Content))
			for pi, n := range v.Content {
				// ProfileConfig.UnmarshalYAML never fails
				_ = n.Decode(&d.Profiles[pi])
			}
		}
	}
	return nil
}

// UnmarshalYAML decodes the display section leniently.
func (c *DisplayConfig) UnmarshalYAML(node *yaml.Node) error {
	*c = DisplayConfig{}

	if node.Kind != yaml.MappingNode {
		c.issues = append(c.issues, errors.New("display: expected a mapping, defaults used"))
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, v := node.Content[i].Value, deref(node.Content[i+1])
		switch key {
		case "address":
			c.Address = c.str(key, v)
		case "type":
			c.Type = c.str(key, v)
		case "resolution":
			c.Resolution = c.str(key, v)
		case "default_layout":
			l, err := decodeLayout(v)
			if err != nil {
				c.issues = append(c.issues, fmt.Errorf("display default_layout: %w", err))
			}
			c.DefaultLayout = l
		}
	}
	return nil
}

func (c *DisplayConfig) str(key string, v *yaml.Node) string {
	s, err := decodeString(v)
	if err != nil {
		c.issues = append(c.issues, fmt.Errorf("display %s: %w", key, err))
	}
	return s
}

// UnmarshalYAML decodes one profile leniently. A profile that is not a
// mapping still occupies its slot, as an empty profile.
func (p *ProfileConfig) UnmarshalYAML(node *yaml.Node) error {
	*p = ProfileConfig{}

	if node.Kind != yaml.MappingNode {
		p.issues = append(p.issues, errors.New("expected a mapping, loaded as empty profile"))
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		v := deref(node.Content[i+1])
		switch node.Content[i].Value {
		case "name":
			s, err := decodeString(v)
			if err != nil {
				p.issues = append(p.issues, fmt.Errorf("name: %w", err))
			}
			p.Name = s
		case "layout":
			l, err := decodeLayout(v)
			if err != nil {
				p.issues = append(p.issues, fmt.Errorf("layout: %w", err))
			}
			p.Layout = l
		case "mappings":
			if isNull(v) {
				continue
			}
			if v.Kind != yaml.SequenceNode {
				p.issues = append(p.issues, errors.New("mappings: expected a sequence, treated as empty"))
				continue
			}
			p.Mappings = make([]MappingConfig, len(v.Content))
			for mi, n := range v.Content {
				// MappingConfig.UnmarshalYAML never fails
				_ = n.Decode(&p.Mappings[mi])
			}
		}
	}
	return nil
}

// decodeLayout accepts an integer in 0..255. Null yields nil without error;
// anything else yields nil and an error.
func decodeLayout(n *yaml.Node) (*uint8, error) {
	if isNull(n) {
		return nil, nil
	}
	var v int
	if n.Kind != yaml.ScalarNode || n.Decode(&v) != nil {
		return nil, fmt.Errorf("%q is not an integer, ignored", n.Value)
	}
	if v < 0 || v > 255 {
		return nil, fmt.Errorf("%d out of range (0-255), ignored", v)
	}
	l := uint8(v)
	return &l, nil
}

func decodeString(n *yaml.Node) (string, error) {
	if isNull(n) {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode {
		return "", errors.New("expected a scalar, ignored")
	}
	return n.Value, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// Parse decodes a profile document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
