// Pinpad is a fixed-length numeric PIN entry prompt for the terminal.
//
// It draws a row of cells with one dot per entered digit, accepts digits,
// delete and enter from the keyboard, an on-screen keypad, or a remote
// keypad connected over websocket, and prints the PIN on stdout once the
// entry completes. The prompt itself is drawn on stderr so the PIN can be
// captured:
//
//	PIN=$(pinpad --length 4)
//
// Usage:
//
//	pinpad [command] [flags]
//
// Running without arguments starts the interactive prompt.
// See 'pinpad --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/pinpad/internal/config"
	"github.com/muurk/pinpad/internal/logging"
	"github.com/muurk/pinpad/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pinpad",
	Short: "Numeric PIN entry prompt",
	Long: `A fixed-length numeric PIN entry prompt for the terminal.

The prompt shows one cell per digit and fills a dot for every digit typed.
It completes when the last cell is filled or when enter is pressed, and
prints the PIN on stdout.

Digits can also come from a remote keypad: start the websocket bridge with
--remote and connect with 'pinpad send' from another terminal or device.

If no command is specified, the interactive prompt starts.`,
	Example: `  # Six digit prompt (default)
  pinpad

  # Four digits, capture the result
  PIN=$(pinpad --length 4)

  # Accept digits from remote keypads on port 7070
  pinpad --remote --port 7070`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runPrompt,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: platform config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(versionCmd)
}

// initLogging configures zap from --log-level/--log-file, falling back to PINPAD_LOG_LEVEL
func initLogging() error {
	if err := logging.InitializeWithOutput(logLevel, logFile); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// loadConfig reads --config, or the default config file
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// resolveConfigPath returns --config, or the default config path
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pinpad %s\n", version.Full())
	},
}
