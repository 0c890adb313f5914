// internal/transport/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/input-remapper/internal/hw"
)

// Supported modes.
const (
	ModeTCP = "tcp"
	ModeRTU = "rtu"
)

// Register geometry of the remote IO module.
const (
	InputCount  = hw.InputBits
	OutputCount = hw.FrameBytes * 8
)

// Config is minimal transport config.
type Config struct {
	Mode string

	// TCP
	Endpoint string

	// RTU
	Device   string
	BaudRate int
	DataBits int
	Parity   string
	StopBits int

	UnitID  uint8
	Timeout time.Duration

	// First discrete input and first coil on the remote module.
	InputAddress  uint16
	OutputAddress uint16
}

// bus is the slice of modbus.Client this transport uses.
type bus interface {
	ReadDiscreteInputs(address, quantity uint16) ([]byte, error)
	WriteMultipleCoils(address, quantity uint16, value []byte) ([]byte, error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
}

// Client is one connection to a remote IO module.
// It serializes requests because it mutates the slave id per write.
type Client struct {
	mu      sync.Mutex
	cfg     Config
	cli     bus
	handler io.Closer
	setUnit func(uint8)
}

// Dial creates a connected client for cfg.Mode.
func Dial(cfg Config) (*Client, error) {
	switch cfg.Mode {
	case ModeTCP, "":
		if cfg.Endpoint == "" {
			return nil, errors.New("modbus transport: endpoint required")
		}

		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID

		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("modbus transport: connect %s: %w", cfg.Endpoint, err)
		}
		return newClient(cfg, modbus.NewClient(h), h, func(id uint8) { h.SlaveId = id }), nil

	case ModeRTU:
		if cfg.Device == "" {
			return nil, errors.New("modbus transport: serial device required")
		}

		h := modbus.NewRTUClientHandler(cfg.Device)
		h.BaudRate = orDefault(cfg.BaudRate, 115200)
		h.DataBits = orDefault(cfg.DataBits, 8)
		h.StopBits = orDefault(cfg.StopBits, 1)
		h.Parity = cfg.Parity
		if h.Parity == "" {
			h.Parity = "N"
		}
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID

		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("modbus transport: open %s: %w", cfg.Device, err)
		}
		return newClient(cfg, modbus.NewClient(h), h, func(id uint8) { h.SlaveId = id }), nil

	default:
		return nil, fmt.Errorf("modbus transport: unknown mode %q", cfg.Mode)
	}
}

func newClient(cfg Config, cli bus, h io.Closer, setUnit func(uint8)) *Client {
	return &Client{cfg: cfg, cli: cli, handler: h, setUnit: setUnit}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// ReadInput reads the 32 discrete inputs as one word, input 1 in bit 0.
func (c *Client) ReadInput() (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unit(c.cfg.UnitID)

	data, err := c.cli.ReadDiscreteInputs(c.cfg.InputAddress, InputCount)
	if err != nil {
		return 0, err
	}
	if len(data) < InputCount/8 {
		return 0, fmt.Errorf("modbus transport: short discrete input payload (%d bytes)", len(data))
	}
	return unpackWord(data), nil
}

// WriteOutput writes one output frame as 24 coils. Coil n carries output
// n+1.
func (c *Client) WriteOutput(frame [hw.FrameBytes]byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unit(c.cfg.UnitID)

	// The frame is most significant byte first; coils are packed LSB first.
	payload := []byte{frame[2], frame[1], frame[0]}

	_, err := c.cli.WriteMultipleCoils(c.cfg.OutputAddress, OutputCount, payload)
	return err
}

// WriteRegisters writes a holding register block on unitID.
func (c *Client) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unit(unitID)

	qty := uint16(len(regs))
	payload := packRegisters(regs)

	_, err := c.cli.WriteMultipleRegisters(addr, qty, payload)
	return err
}

func (c *Client) unit(id uint8) {
	if c.setUnit != nil {
		c.setUnit(id)
	}
}

// ---- helpers (pure geometry) ----

func unpackWord(data []byte) uint32 {
	var w uint32
	for i := 0; i < 4 && i < len(data); i++ {
		w |= uint32(data[i]) << (8 * i)
	}
	return w
}

func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
