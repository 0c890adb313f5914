package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentWhenUnset(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if GetLogger().Core().Enabled(zap.ErrorLevel) {
		t.Fatalf("expected nop logger when no level is configured")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer SetLogger(nil)

	if GetLogger().Core().Enabled(zap.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !GetLogger().Core().Enabled(zap.WarnLevel) {
		t.Fatalf("warn should be enabled at warn level")
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogProfileSwitch(1, 2, "Fighting")
	LogTransportError("read", errors.New("timeout"))
	LogConfigIssue("profiles.yaml", errors.New("bad entry"))
	LogWord("input", 0x5)

	if logs.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", logs.Len())
	}

	sw := logs.FilterMessage("Profile switched").All()
	if len(sw) != 1 {
		t.Fatalf("expected one profile switch entry")
	}
	if got := sw[0].ContextMap()["to"]; got != uint8(2) {
		t.Fatalf("expected to=2, got %v", got)
	}

	words := logs.FilterMessage("input").All()
	if len(words) != 1 || words[0].ContextMap()["hex"] != "0x00000005" {
		t.Fatalf("unexpected word entry: %+v", words)
	}
}
