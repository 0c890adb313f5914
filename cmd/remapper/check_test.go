//go:build !tinygo

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func runCheckWith(t *testing.T, args ...string) (string, error) {
	t.Helper()
	strict = false
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"check"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCheck_PrintsTable(t *testing.T) {
	p := writeDoc(t, `
profiles:
  - name: Swap
    mappings:
      - [1, [2, 3]]
`)
	out, err := runCheckWith(t, p)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "Passthrough (1:1)") || !strings.Contains(out, "Swap") {
		t.Fatalf("table missing profiles:\n%s", out)
	}
	if !strings.Contains(out, "1->0x6") {
		t.Fatalf("mapping missing:\n%s", out)
	}
}

func TestCheck_StrictFailsOnIssues(t *testing.T) {
	p := writeDoc(t, `
profiles:
  - name: Bad
    mappings:
      - [30, [1]]
`)
	out, err := runCheckWith(t, p)
	if err != nil {
		t.Fatalf("non-strict check must pass: %v", err)
	}
	if !strings.Contains(out, "warning:") {
		t.Fatalf("expected warnings:\n%s", out)
	}

	if _, err := runCheckWith(t, "--strict", p); err == nil {
		t.Fatalf("strict check must fail")
	}
}

func TestCheck_MissingFile(t *testing.T) {
	if _, err := runCheckWith(t, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
