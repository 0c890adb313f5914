package config

import (
	"strings"
	"testing"
)

// helper to build a profile quickly
func profileWith(name string, rows ...MappingConfig) ProfileConfig {
	return ProfileConfig{
		Name:     name,
		Mappings: rows,
	}
}

func row(input int, outputs ...int) MappingConfig {
	return MappingConfig{Input: input, Outputs: outputs, Valid: true}
}

// ---- tests ----

func TestValidate_CleanDocument(t *testing.T) {
	doc := &Document{
		Display: DisplayConfig{Address: "0x3C", Resolution: "128x64"},
		Profiles: []ProfileConfig{
			profileWith("Fight", row(1, 2, 3), row(4, 17)),
			profileWith("Menu", row(29, 1)),
		},
	}

	if err := Validate(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NilDocument(t *testing.T) {
	if err := Validate(nil); err != ErrNoDocument {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
}

func TestValidate_ReservedInputReported(t *testing.T) {
	doc := &Document{
		Profiles: []ProfileConfig{
			profileWith("p", row(30, 1)),
		},
	}

	err := Validate(doc)
	if err == nil {
		t.Fatalf("expected reserved input error, got nil")
	}
	if !strings.Contains(err.Error(), "input 30 is reserved") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ZeroInputReported(t *testing.T) {
	doc := &Document{
		Profiles: []ProfileConfig{
			profileWith("p", row(0, 1)),
		},
	}

	if err := Validate(doc); err == nil {
		t.Fatalf("expected error for input 0, got nil")
	}
}

func TestValidate_OutputOutOfRangeReported(t *testing.T) {
	doc := &Document{
		Profiles: []ProfileConfig{
			profileWith("p", row(1, 2, 18)),
		},
	}

	err := Validate(doc)
	if err == nil {
		t.Fatalf("expected output range error, got nil")
	}
	if !strings.Contains(err.Error(), "output 18 out of range") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DuplicateInputReported(t *testing.T) {
	doc := &Document{
		Profiles: []ProfileConfig{
			profileWith("p", row(3, 1), row(3, 2)),
		},
	}

	err := Validate(doc)
	if err == nil || !strings.Contains(err.Error(), "last one wins") {
		t.Fatalf("expected duplicate input error, got %v", err)
	}
}

func TestValidate_TooManyProfiles(t *testing.T) {
	doc := &Document{}
	for i := 0; i < 9; i++ {
		doc.Profiles = append(doc.Profiles, profileWith("p"))
	}

	err := Validate(doc)
	if err == nil || !strings.Contains(err.Error(), "only the first 8") {
		t.Fatalf("expected profile count error, got %v", err)
	}
}

func TestValidate_BadDisplay(t *testing.T) {
	doc := &Document{
		Display: DisplayConfig{Address: "zz", Resolution: "wide", Type: "epaper"},
	}

	err := Validate(doc)
	if err == nil {
		t.Fatalf("expected display errors, got nil")
	}
	msg := err.Error()
	for _, want := range []string{"display address", "display resolution", "unsupported"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("missing %q in %v", want, msg)
		}
	}
}

func TestValidate_InvalidRowReported(t *testing.T) {
	doc := &Document{
		Profiles: []ProfileConfig{
			profileWith("p", MappingConfig{}),
		},
	}

	if err := Validate(doc); err == nil {
		t.Fatalf("expected malformed row error, got nil")
	}
}
