//go:build tinygo

// Firmware is the RP2040 build of the remapper: shift registers on SPI0 and
// an SSD1306 panel on I2C0.
package main

import (
	"context"
	_ "embed"
	"machine"
	"time"

	"github.com/tamzrod/input-remapper/internal/acquire"
	"github.com/tamzrod/input-remapper/internal/app"
	"github.com/tamzrod/input-remapper/internal/config"
	"github.com/tamzrod/input-remapper/internal/display"
	"github.com/tamzrod/input-remapper/internal/logging"
	"github.com/tamzrod/input-remapper/internal/render"
	"github.com/tamzrod/input-remapper/internal/transport/shiftreg"
)

//go:embed profiles.yaml
var profilesDoc []byte

// Board wiring.
const (
	spiMISO = machine.GP0
	spiSCK  = machine.GP2
	spiMOSI = machine.GP3

	inputCE    = machine.GP21
	inputLatch = machine.GP20

	outputCE  = machine.GP1
	outputSS  = machine.GP6
	outputCLR = machine.GP7

	i2cSDA = machine.GP4
	i2cSCL = machine.GP5

	led = machine.GP25
)

const (
	spiFrequency = 10_000_000
	i2cFrequency = 400 * machine.KHz

	// shift register chains use different clock modes
	inputMode  = 2
	outputMode = 0
)

func main() {
	out := machine.PinConfig{Mode: machine.PinOutput}
	for _, p := range []machine.Pin{outputCLR, led, inputLatch, inputCE, outputCE, outputSS} {
		p.Configure(out)
	}
	outputCLR.High()
	led.High()

	if err := logging.Initialize(""); err != nil {
		halt(err)
	}

	bus, err := newShiftRegisters()
	if err != nil {
		halt(err)
	}

	if err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       i2cSDA,
		SCL:       i2cSCL,
		Frequency: i2cFrequency,
	}); err != nil {
		halt(err)
	}

	err = app.Run(context.Background(), app.Options{
		Store:     config.BytesStore(profilesDoc),
		Transport: bus,
		Acquire:   acquire.Config{},
		Open:      display.I2COpener(machine.I2C0),
		Render:    render.Config{},
	})
	halt(err)
}

// newShiftRegisters configures SPI0 and switches its clock mode only when
// the direction changes.
func newShiftRegisters() (*shiftreg.Bus, error) {
	cfg := machine.SPIConfig{
		Frequency: spiFrequency,
		SCK:       spiSCK,
		SDO:       spiMOSI,
		SDI:       spiMISO,
		Mode:      inputMode,
	}
	if err := machine.SPI0.Configure(cfg); err != nil {
		return nil, err
	}

	mode := cfg.Mode
	use := func(m uint8) func() error {
		return func() error {
			if mode == m {
				return nil
			}
			cfg.Mode = m
			mode = m
			return machine.SPI0.Configure(cfg)
		}
	}

	return shiftreg.New(shiftreg.Config{
		Bus: machine.SPI0,
		Pins: shiftreg.Pins{
			InputCE:    inputCE,
			InputLatch: inputLatch,
			OutputCE:   outputCE,
			OutputSS:   outputSS,
		},
		BeginRead:  use(inputMode),
		BeginWrite: use(outputMode),
	})
}

// halt reports err on the serial console and blinks the LED forever.
func halt(err error) {
	if err != nil {
		println("remapper stopped:", err.Error())
	}
	for {
		led.Set(!led.Get())
		time.Sleep(250 * time.Millisecond)
	}
}
