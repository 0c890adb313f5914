//go:build !tinygo

// Remapper runs the input remapper on a desktop or against a Modbus
// remote IO module.
//
// Usage:
//
//	remapper run --config profiles.yaml [flags]
//	remapper check profiles.yaml
//
// See 'remapper --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tamzrod/input-remapper/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "remapper",
	Short: "Programmable input remapper",
	Long: `Reads a 32-bit input word, rewrites it through the selected profile and
drives the 24-bit output frame.

Hold input 30 (unlock) and press input 31 or 32 to move to the previous or
next profile.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "remapper %s\n", version.Full())
	},
}
