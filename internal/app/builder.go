//go:build !tinygo

package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/input-remapper/internal/acquire"
	"github.com/tamzrod/input-remapper/internal/mirror"
	"github.com/tamzrod/input-remapper/internal/sim"
	tmodbus "github.com/tamzrod/input-remapper/internal/transport/modbus"
)

// Host transport kinds.
const (
	TransportSim       = "sim"
	TransportModbusTCP = "modbus-tcp"
	TransportModbusRTU = "modbus-rtu"
)

// HostConfig is the host-side transport and mirror configuration, as read
// from the command line.
type HostConfig struct {
	Transport string

	Endpoint string
	Device   string
	Baud     int
	Parity   string
	StopBits int
	UnitID   uint8
	Timeout  time.Duration

	InputAddress  uint16
	OutputAddress uint16

	// Mirror is enabled when MirrorEnabled is set. An empty MirrorEndpoint
	// reuses the Modbus transport connection.
	MirrorEnabled  bool
	MirrorEndpoint string
	MirrorUnitID   uint8
	MirrorAddress  uint16
	MirrorInterval time.Duration
}

// Built is the result of BuildTransport.
type Built struct {
	Transport acquire.Transport

	// Keyboard is set for the sim transport.
	Keyboard *sim.Keyboard
	// Modbus is set for the modbus transports.
	Modbus *tmodbus.Client
}

// BuildTransport constructs the transport for hc.Transport.
// One connection attempt: no retries.
func BuildTransport(hc HostConfig) (Built, func() error, error) {
	noop := func() error { return nil }

	switch hc.Transport {
	case TransportSim, "":
		kb := sim.NewKeyboard()
		return Built{Transport: kb, Keyboard: kb}, noop, nil

	case TransportModbusTCP, TransportModbusRTU:
		mode := tmodbus.ModeTCP
		if hc.Transport == TransportModbusRTU {
			mode = tmodbus.ModeRTU
		}
		c, err := tmodbus.Dial(tmodbus.Config{
			Mode:          mode,
			Endpoint:      hc.Endpoint,
			Device:        hc.Device,
			BaudRate:      hc.Baud,
			Parity:        hc.Parity,
			StopBits:      hc.StopBits,
			UnitID:        hc.UnitID,
			Timeout:       hc.Timeout,
			InputAddress:  hc.InputAddress,
			OutputAddress: hc.OutputAddress,
		})
		if err != nil {
			return Built{}, nil, err
		}
		return Built{Transport: c, Modbus: c}, c.Close, nil

	default:
		return Built{}, nil, fmt.Errorf("app: unknown transport %q", hc.Transport)
	}
}

// BuildMirror constructs the mirror options, or nil when the mirror is
// disabled. shared is the transport connection, if any.
func BuildMirror(hc HostConfig, shared *tmodbus.Client) (*MirrorOptions, func() error, error) {
	noop := func() error { return nil }
	if !hc.MirrorEnabled {
		return nil, noop, nil
	}

	opts := &MirrorOptions{
		Config: mirror.Config{
			UnitID:  hc.MirrorUnitID,
			Address: hc.MirrorAddress,
		},
		Interval: hc.MirrorInterval,
	}

	if hc.MirrorEndpoint == "" {
		if shared == nil {
			return nil, nil, errors.New("app: mirror needs --mirror-endpoint unless the transport is modbus")
		}
		opts.Writer = shared
		return opts, noop, nil
	}

	c, err := tmodbus.Dial(tmodbus.Config{
		Mode:     tmodbus.ModeTCP,
		Endpoint: hc.MirrorEndpoint,
		UnitID:   hc.MirrorUnitID,
		Timeout:  hc.Timeout,
	})
	if err != nil {
		return nil, nil, err
	}
	opts.Writer = c
	return opts, c.Close, nil
}
