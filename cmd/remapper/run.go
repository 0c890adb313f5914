//go:build !tinygo

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamzrod/input-remapper/internal/acquire"
	"github.com/tamzrod/input-remapper/internal/app"
	"github.com/tamzrod/input-remapper/internal/config"
	"github.com/tamzrod/input-remapper/internal/display"
	"github.com/tamzrod/input-remapper/internal/logging"
	"github.com/tamzrod/input-remapper/internal/render"
	"github.com/tamzrod/input-remapper/internal/sim"
	"github.com/tamzrod/input-remapper/internal/version"
)

// Run command flags
var (
	configPath   string
	logLevel     string
	headless     bool
	scale        int
	pollInterval time.Duration
	debounce     time.Duration
	host         app.HostConfig
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the remapper",
	Long: `Load the profile document once, then run the acquisition loop, the display
and the optional status mirror until interrupted.

A missing or unreadable profile document is not an error: the remapper runs
with the passthrough profile only.`,
	Example: `  # Desktop simulator driven by the keyboard
  remapper run --config profiles.yaml

  # Modbus TCP remote IO, status mirrored to holding registers 100-119
  remapper run --config profiles.yaml --transport modbus-tcp --endpoint 10.0.0.5:502 \
      --mirror --mirror-address 100

  # Modbus RTU on a serial adapter
  remapper run --transport modbus-rtu --device /dev/ttyUSB0 --baud 115200`,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "Profile document (YAML or JSON)")
	f.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty reads "+logging.LogLevelEnvVar)
	f.BoolVar(&headless, "headless", false, "Do not open the display window")
	f.IntVar(&scale, "scale", sim.DefaultScale, "Display window scale")
	f.DurationVar(&pollInterval, "poll-interval", time.Millisecond, "Acquisition poll interval (0 spins)")
	f.DurationVar(&debounce, "debounce", acquire.DefaultDebounce, "Minimum time between profile changes")

	f.StringVar(&host.Transport, "transport", app.TransportSim, "Transport (sim, modbus-tcp, modbus-rtu)")
	f.StringVar(&host.Endpoint, "endpoint", "", "Modbus TCP endpoint host:port")
	f.StringVar(&host.Device, "device", "", "Modbus RTU serial device")
	f.IntVar(&host.Baud, "baud", 115200, "Modbus RTU baud rate")
	f.StringVar(&host.Parity, "parity", "N", "Modbus RTU parity (N, E, O)")
	f.IntVar(&host.StopBits, "stop-bits", 1, "Modbus RTU stop bits")
	f.Uint8Var(&host.UnitID, "unit-id", 1, "Modbus unit id of the remote IO module")
	f.DurationVar(&host.Timeout, "timeout", time.Second, "Modbus request timeout")
	f.Uint16Var(&host.InputAddress, "input-address", 0, "First discrete input")
	f.Uint16Var(&host.OutputAddress, "output-address", 0, "First coil")

	f.BoolVar(&host.MirrorEnabled, "mirror", false, "Mirror live status to Modbus holding registers")
	f.StringVar(&host.MirrorEndpoint, "mirror-endpoint", "", "Modbus TCP endpoint for the mirror (default: transport connection)")
	f.Uint8Var(&host.MirrorUnitID, "mirror-unit-id", 1, "Modbus unit id for the mirror")
	f.Uint16Var(&host.MirrorAddress, "mirror-address", 0, "First holding register of the status block")
	f.DurationVar(&host.MirrorInterval, "mirror-interval", 250*time.Millisecond, "Mirror publish interval")
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	logging.Info("Starting remapper",
		zap.String("version", version.Short()),
		zap.String("transport", host.Transport),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	built, closeTransport, err := app.BuildTransport(host)
	if err != nil {
		return fmt.Errorf("transport: %w", err)
	}
	defer closeTransport()

	mirrorOpts, closeMirror, err := app.BuildMirror(host, built.Modbus)
	if err != nil {
		return fmt.Errorf("mirror: %w", err)
	}
	defer closeMirror()

	opts := app.Options{
		Store:     config.FileStore{Path: configPath},
		Transport: built.Transport,
		Acquire:   acquire.Config{Interval: pollInterval, Debounce: debounce},
		Render:    render.Config{Interval: render.DefaultInterval},
		Mirror:    mirrorOpts,
	}

	if headless {
		return app.Run(ctx, opts)
	}

	// resized to the document's resolution when the display is opened
	fb := display.NewFramebuffer(config.DefaultDisplayWidth, config.DefaultDisplayHeight)
	opts.Open = display.FramebufferOpener(fb)

	kb := built.Keyboard
	if kb == nil {
		// the window still shows the display; keys are ignored
		kb = sim.NewKeyboard()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx, opts)
		cancel()
	}()

	// The window owns the main thread until it closes.
	werr := sim.NewWindow(ctx, fb, kb).Run(sim.Title(version.Short()), scale)
	cancel()

	if werr != nil {
		logging.Warn("Window closed", zap.Error(werr))
	}
	return <-done
}
