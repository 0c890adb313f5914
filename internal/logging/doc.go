// Package logging provides structured logging for the remapper.
//
// This package wraps a zap logger with convenience functions for common
// logging patterns. The acquisition loop logs only on events (profile
// switches, transport failures), never per iteration, so an enabled logger
// does not slow the remap path.
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize(level); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// When level is empty the REMAPPER_LOG_LEVEL environment variable is used.
// When both are empty a nop logger is installed.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and
// SetLogger must be called before the loops start.
package logging
