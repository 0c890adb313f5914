package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Display defaults used when the document leaves a field empty.
const (
	DefaultDisplayAddress uint16 = 0x3C
	DefaultDisplayType           = "ssd1306"
	DefaultDisplayWidth   int16  = 128
	DefaultDisplayHeight  int16  = 64
)

// ParseAddress parses a hex I2C address with or without a 0x prefix.
// An empty string yields DefaultDisplayAddress.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDisplayAddress, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}

	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("display address %q: %w", s, err)
	}
	if v > 0x7F {
		return 0, fmt.Errorf("display address 0x%X: outside 7-bit I2C range", v)
	}
	return uint16(v), nil
}

// ParseResolution parses "WIDTHxHEIGHT". An empty string yields the
// 128x64 default.
func ParseResolution(s string) (width, height int16, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultDisplayWidth, DefaultDisplayHeight, nil
	}

	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("display resolution %q: want WIDTHxHEIGHT", s)
	}

	w, err := strconv.ParseInt(ws, 10, 16)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("display resolution %q: bad width", s)
	}
	h, err := strconv.ParseInt(hs, 10, 16)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("display resolution %q: bad height", s)
	}
	return int16(w), int16(h), nil
}
