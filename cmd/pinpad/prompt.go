package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/pinpad/internal/config"
	"github.com/muurk/pinpad/internal/discovery"
	"github.com/muurk/pinpad/internal/logging"
	"github.com/muurk/pinpad/internal/pinentry"
	"github.com/muurk/pinpad/internal/remote"
	"github.com/muurk/pinpad/internal/ui"
	"github.com/muurk/pinpad/internal/version"
)

// ErrCancelled is returned when the prompt exits without a completed PIN
var ErrCancelled = errors.New("PIN entry cancelled")

// Prompt flags
var (
	pinLength   int
	remoteOn    bool
	remoteHost  string
	remotePort  int
	noAdvertise bool
	noKeypad    bool
	repeat      bool
	promptTitle string
)

func init() {
	rootCmd.Flags().IntVarP(&pinLength, "length", "n", pinentry.DefaultCapacity, "Number of digits")
	rootCmd.Flags().BoolVar(&remoteOn, "remote", false, "Start the websocket keypad bridge")
	rootCmd.Flags().StringVar(&remoteHost, "host", "", "Bridge listen host (empty = all interfaces)")
	rootCmd.Flags().IntVar(&remotePort, "port", config.DefaultRemotePort, "Bridge listen port")
	rootCmd.Flags().BoolVar(&noAdvertise, "no-advertise", false, "Do not announce the bridge over mDNS")
	rootCmd.Flags().BoolVar(&noKeypad, "no-keypad", false, "Never show the on-screen keypad")
	rootCmd.Flags().BoolVar(&repeat, "repeat", false, "Keep prompting after each completion")
	rootCmd.Flags().StringVar(&promptTitle, "title", "Enter PIN", "Prompt title")
}

// applyPromptFlags overrides config values with explicitly set flags
func applyPromptFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Widget.Capacity = pinLength
	}
	if flags.Changed("remote") {
		cfg.Remote.Enabled = remoteOn
	}
	if flags.Changed("host") {
		cfg.Remote.Host = remoteHost
	}
	if flags.Changed("port") {
		cfg.Remote.Port = remotePort
	}
	if noAdvertise {
		cfg.Remote.Advertise = false
	}
	if noKeypad {
		cfg.Display.ShowKeypad = false
	}
}

func runPrompt(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true
	printer := ui.NewPrinter(cmd.ErrOrStderr())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyPromptFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	widget, err := pinentry.New(cfg.WidgetConfig(), pinentry.Hooks{})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	width, height := ui.GetTerminalSize()
	opts := ui.Options{
		Title:           promptTitle,
		ShowKeypad:      cfg.Display.ShowKeypad,
		ClearOnComplete: cfg.Display.ClearOnComplete,
		QuitOnComplete:  !repeat,
		Width:           width,
		Height:          height,
	}

	var program *tea.Program

	var bridge *remote.Server
	if cfg.Remote.Enabled {
		bridge = remote.New(remote.Config{Host: cfg.Remote.Host, Port: cfg.Remote.Port}, func(ev pinentry.KeyEvent) {
			program.Send(ui.RemoteKeyMsg{Event: ev})
		})
		if err := bridge.Listen(); err != nil {
			printer.PrintError("Keypad bridge failed", err, []string{
				"Check that no other process is using the port",
				"Pick another port with --port",
				"Run without --remote to use the local keyboard only",
			})
			return err
		}
		opts.Status = "bridge " + bridge.Addr().String()
	}

	program = tea.NewProgram(ui.NewPinModel(widget, opts),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	bridgeDone := make(chan error, 1)
	bridgeCtx, stopBridge := context.WithCancel(ctx)
	defer stopBridge()

	if bridge != nil && cfg.Remote.Advertise {
		withdraw, err := discovery.Advertise(cfg.Remote.Instance, bridge.Port(), map[string]string{
			discovery.TxtCapacity: strconv.Itoa(widget.Capacity()),
			discovery.TxtPath:     remote.KeysPath,
			discovery.TxtVersion:  version.Short(),
		})
		if err != nil {
			logging.Warn("Keypad bridge will not be discoverable", zap.Error(err))
		} else {
			defer withdraw()
		}
	}

	// The alt screen owns the terminal until the bridge is down
	restoreLogs := logging.SuspendTerminalOutput()
	if bridge != nil {
		go func() { bridgeDone <- bridge.Serve(bridgeCtx) }()
	}

	final, runErr := program.Run()

	var bridgeErr error
	if bridge != nil {
		stopBridge()
		bridgeErr = <-bridgeDone
	}
	restoreLogs()
	if bridgeErr != nil {
		logging.Warn("Keypad bridge stopped with error", zap.Error(bridgeErr))
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("prompt failed: %w", runErr)
	}

	model, ok := final.(ui.PinModel)
	if !ok || len(model.Completions()) == 0 {
		return ErrCancelled
	}

	for _, pin := range model.Completions() {
		fmt.Fprintln(cmd.OutOrStdout(), pin)
	}

	logging.Info("Prompt finished",
		zap.Int("completions", len(model.Completions())),
		zap.Int("capacity", widget.Capacity()),
	)
	return nil
}
