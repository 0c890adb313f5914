package config

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoDocument is returned when a store has nothing to load.
var ErrNoDocument = errors.New("config: no profile document")

// Store supplies the profile document. It is called exactly once at boot.
type Store interface {
	Load() (*Document, error)
}

// FileStore reads a YAML or JSON document from disk.
type FileStore struct {
	Path string
}

func (s FileStore) Load() (*Document, error) {
	if s.Path == "" {
		return nil, ErrNoDocument
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", s.Path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", s.Path, err)
	}

	Normalize(doc)
	return doc, nil
}

// BytesStore parses an in-memory document, typically one embedded in the
// firmware image.
type BytesStore []byte

func (b BytesStore) Load() (*Document, error) {
	if len(b) == 0 {
		return nil, ErrNoDocument
	}

	doc, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("config: parse embedded document: %w", err)
	}

	Normalize(doc)
	return doc, nil
}
