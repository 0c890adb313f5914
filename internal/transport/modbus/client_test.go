package modbus

import (
	"errors"
	"testing"

	"github.com/tamzrod/input-remapper/internal/acquire"
	"github.com/tamzrod/input-remapper/internal/hw"
)

// ---- fake bus ----

type busCall struct {
	fc    uint8
	unit  uint8
	addr  uint16
	qty   uint16
	value []byte
}

type fakeBus struct {
	unit   uint8
	inputs []byte
	err    error
	calls  []busCall
}

func (f *fakeBus) ReadDiscreteInputs(address, quantity uint16) ([]byte, error) {
	f.calls = append(f.calls, busCall{fc: 2, unit: f.unit, addr: address, qty: quantity})
	return f.inputs, f.err
}

func (f *fakeBus) WriteMultipleCoils(address, quantity uint16, value []byte) ([]byte, error) {
	f.calls = append(f.calls, busCall{fc: 15, unit: f.unit, addr: address, qty: quantity, value: value})
	return nil, f.err
}

func (f *fakeBus) WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error) {
	f.calls = append(f.calls, busCall{fc: 16, unit: f.unit, addr: address, qty: quantity, value: value})
	return nil, f.err
}

func newFake(cfg Config) (*Client, *fakeBus) {
	f := &fakeBus{}
	return newClient(cfg, f, nil, func(id uint8) { f.unit = id }), f
}

// ---- tests ----

func TestReadInput_PacksLSBFirst(t *testing.T) {
	c, f := newFake(Config{UnitID: 3, InputAddress: 10})
	f.inputs = []byte{0x01, 0x00, 0x00, 0x20}

	word, err := c.ReadInput()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if word != hw.Bit(1)|hw.Bit(hw.UnlockPosition) {
		t.Fatalf("word = 0x%08x", word)
	}

	call := f.calls[0]
	if call.fc != 2 || call.addr != 10 || call.qty != InputCount || call.unit != 3 {
		t.Fatalf("unexpected request %+v", call)
	}
}

func TestReadInput_ShortPayload(t *testing.T) {
	c, f := newFake(Config{})
	f.inputs = []byte{0x01}

	if _, err := c.ReadInput(); err == nil {
		t.Fatalf("expected error for short payload")
	}
}

func TestReadInput_PropagatesError(t *testing.T) {
	c, f := newFake(Config{})
	f.err = errors.New("timeout")

	if _, err := c.ReadInput(); !errors.Is(err, f.err) {
		t.Fatalf("expected bus error, got %v", err)
	}
}

func TestWriteOutput_CoilOrder(t *testing.T) {
	c, f := newFake(Config{OutputAddress: 5})

	// outputs 2 and 3, plus output 17
	out := hw.Bit(2) | hw.Bit(3) | hw.Bit(17)
	if err := c.WriteOutput(acquire.Frame(out)); err != nil {
		t.Fatalf("write: %v", err)
	}

	call := f.calls[0]
	if call.fc != 15 || call.addr != 5 || call.qty != OutputCount {
		t.Fatalf("unexpected request %+v", call)
	}
	want := []byte{0b110, 0x00, 0x01}
	for i := range want {
		if call.value[i] != want[i] {
			t.Fatalf("coil payload = % x, want % x", call.value, want)
		}
	}
}

func TestWriteRegisters_SetsUnitAndPacksBigEndian(t *testing.T) {
	c, f := newFake(Config{UnitID: 1})

	if err := c.WriteRegisters(7, 100, []uint16{0x1234, 0x00FF}); err != nil {
		t.Fatalf("write: %v", err)
	}

	call := f.calls[0]
	if call.unit != 7 || call.addr != 100 || call.qty != 2 {
		t.Fatalf("unexpected request %+v", call)
	}
	want := []byte{0x12, 0x34, 0x00, 0xFF}
	for i := range want {
		if call.value[i] != want[i] {
			t.Fatalf("register payload = % x, want % x", call.value, want)
		}
	}

	// Next IO call restores the configured unit.
	f.inputs = make([]byte, 4)
	_, _ = c.ReadInput()
	if f.calls[1].unit != 1 {
		t.Fatalf("unit not restored, got %d", f.calls[1].unit)
	}
}

func TestDial_Validation(t *testing.T) {
	if _, err := Dial(Config{Mode: ModeTCP}); err == nil {
		t.Fatalf("expected error for missing endpoint")
	}
	if _, err := Dial(Config{Mode: ModeRTU}); err == nil {
		t.Fatalf("expected error for missing device")
	}
	if _, err := Dial(Config{Mode: "udp"}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestClose_NilHandler(t *testing.T) {
	c, _ := newFake(Config{})
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

var _ acquire.Transport = (*Client)(nil)
