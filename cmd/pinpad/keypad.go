package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/pinpad/internal/discovery"
	"github.com/muurk/pinpad/internal/remote"
	"github.com/muurk/pinpad/internal/ui"
)

// Remote keypad flags
var (
	sendAddr     string
	sendInstance string
	scanTimeout  int
)

var sendCmd = &cobra.Command{
	Use:   "send <keys>...",
	Short: "Send key presses to a remote PIN prompt",
	Long: `Connect to a pinpad keypad bridge and press keys on it.

Each argument is a key name (0-9, delete, backspace, enter, confirm) or a
run of digits. Without --addr the bridge is found over mDNS: the named
--instance, or the first bridge that answers.`,
	Example: `  # Type 1234 and confirm on a known bridge
  pinpad send --addr 192.168.1.20:7070 1234 enter

  # Correct a digit
  pinpad send --addr localhost:7070 9 delete 8

  # Find the bridge called "kitchen" over mDNS
  pinpad send --instance kitchen 0000`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSend,
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for pinpad keypad bridges on the network",
	Long: `Scan for running pinpad prompts that accept remote keypads.

Bridges announce themselves over mDNS as _pinpad._tcp with their digit
capacity in a TXT record.`,
	Example: `  # Scan for 5 seconds (default)
  pinpad scan

  # Longer scan for busy networks
  pinpad scan --timeout 15`,
	RunE: runScan,
}

func init() {
	sendCmd.Flags().StringVar(&sendAddr, "addr", "", "Bridge address host:port (skips discovery)")
	sendCmd.Flags().StringVar(&sendInstance, "instance", "", "mDNS instance name to look for")
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 0, "Scan timeout in seconds (0 = quick scan)")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(scanCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	codes, err := remote.ParseKeys(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	addr := sendAddr
	if addr == "" {
		keypad, err := findKeypad(ctx)
		if err != nil {
			return err
		}
		addr = keypad.Addr()
	}

	client, err := remote.Dial(ctx, addr)
	if err != nil {
		return err
	}
	defer client.Close()

	for _, code := range codes {
		if err := client.PressKey(code); err != nil {
			return fmt.Errorf("failed to send %s: %w", code, err)
		}
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Keys sent", map[string]string{
		"Bridge": addr,
		"Keys":   strconv.Itoa(len(codes)),
	})
	return nil
}

// findKeypad locates a bridge over mDNS
func findKeypad(ctx context.Context) (*discovery.Keypad, error) {
	scanner := discovery.NewScanner()

	if sendInstance != "" {
		return scanner.WaitForKeypad(ctx, sendInstance)
	}

	keypads, err := scanner.ScanForKeypads(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	if len(keypads) == 0 {
		return nil, fmt.Errorf("no keypad bridges found; use --addr")
	}
	return keypads[0], nil
}

// scanDuration maps the --timeout flag to a browse duration
func scanDuration(seconds int) time.Duration {
	if seconds <= 0 {
		return discovery.QuickScanTimeout
	}
	return time.Duration(seconds) * time.Second
}

func scanKeypads(ctx context.Context, seconds int) ([]*discovery.Keypad, error) {
	if seconds <= 0 {
		return discovery.QuickScan(ctx)
	}
	scanner := discovery.NewScanner()
	scanner.Timeout = scanDuration(seconds)
	return scanner.ScanForKeypads(ctx)
}

func runScan(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	printer := ui.NewPrinter(cmd.OutOrStdout())

	printer.PrintHeader("Keypad scan", "pinpad scan", map[string]string{
		"Service": discovery.ServiceType,
		"Timeout": scanDuration(scanTimeout).String(),
	})

	keypads, err := scanKeypads(cmd.Context(), scanTimeout)
	if err != nil {
		printer.PrintError("Scan failed", err, []string{
			"Check that multicast is allowed on this network",
			"Allow UDP port 5353 through the firewall",
		})
		return err
	}

	if len(keypads) == 0 {
		printer.PrintWarning("No keypad bridges found", map[string]string{
			"Hint": "start a prompt with 'pinpad --remote'",
		})
		return nil
	}

	details := make(map[string]string, len(keypads))
	for _, k := range keypads {
		value := k.Addr() + k.Path()
		if c := k.Capacity(); c > 0 {
			value += fmt.Sprintf(" (%d digits)", c)
		}
		details[k.Instance] = value
	}
	printer.PrintSuccess(fmt.Sprintf("Found %d keypad bridge(s)", len(keypads)), details)
	printer.Println("Use 'pinpad send --addr <host:port> <keys>' to type on one")
	return nil
}
