package discovery

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/pinpad/internal/logging"
)

const (
	// ServiceType is the mDNS service type pinpad bridges advertise
	ServiceType = "_pinpad._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for keypad discovery
	DefaultScanTimeout = 5 * time.Second

	// QuickScanTimeout bounds QuickScan
	QuickScanTimeout = 2 * time.Second

	// DefaultPath is the bridge endpoint assumed when no path TXT record is present
	DefaultPath = "/keys"

	// TXT record keys
	TxtCapacity = "capacity"
	TxtPath     = "path"
	TxtVersion  = "version"
)

// Scanner handles mDNS keypad discovery
type Scanner struct {
	// Timeout is the maximum time to wait for responses
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// ScanForKeypads browses until the timeout (or ctx) expires and returns every
// bridge seen, sorted by instance name
func (s *Scanner) ScanForKeypads(ctx context.Context) ([]*Keypad, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	var (
		mu      sync.Mutex
		keypads = make(map[string]*Keypad)
	)

	go func() {
		for entry := range entries {
			keypad := s.parseServiceEntry(entry)
			if keypad == nil {
				continue
			}
			mu.Lock()
			keypads[keypad.Instance] = keypad
			mu.Unlock()
			logging.Debug("Discovered keypad", zap.String("keypad", keypad.String()))
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	result := make([]*Keypad, 0, len(keypads))
	for _, k := range keypads {
		result = append(result, k)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Instance < result[j].Instance })
	return result, nil
}

// WaitForKeypad waits for the named instance (any instance when empty) and
// returns as soon as it is seen
func (s *Scanner) WaitForKeypad(ctx context.Context, instance string) (*Keypad, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	found := make(chan *Keypad, 1)

	go func() {
		for entry := range entries {
			keypad := s.parseServiceEntry(entry)
			if keypad != nil && (instance == "" || keypad.Instance == instance) {
				select {
				case found <- keypad:
				default:
				}
				cancel()
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	select {
	case keypad := <-found:
		return keypad, nil
	case <-ctx.Done():
		// The sender may have won the race with cancel
		select {
		case keypad := <-found:
			return keypad, nil
		default:
		}
		return nil, fmt.Errorf("keypad %q not found within %s", instance, s.Timeout)
	}
}

// parseServiceEntry converts a zeroconf service entry to a Keypad.
// Returns nil if the entry has no instance name, address or port.
func (s *Scanner) parseServiceEntry(entry *zeroconf.ServiceEntry) *Keypad {
	if entry == nil || entry.Instance == "" || entry.Port == 0 {
		return nil
	}

	// Get IP address (prefer IPv4)
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			metadata[parts[0]] = ""
		}
	}

	return &Keypad{
		Instance:     entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// TxtRecords renders metadata as sorted "key=value" TXT strings
func TxtRecords(metadata map[string]string) []string {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	txt := make([]string, 0, len(keys))
	for _, k := range keys {
		txt = append(txt, k+"="+metadata[k])
	}
	return txt
}

// Advertise registers a bridge on all interfaces. The returned function
// withdraws the advertisement.
func Advertise(instance string, port int, metadata map[string]string) (func(), error) {
	if instance == "" {
		return nil, fmt.Errorf("instance name is required")
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d", port)
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, TxtRecords(metadata), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Advertising keypad bridge",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)

	return func() {
		server.Shutdown()
		logging.Debug("Withdrew keypad advertisement", zap.String("instance", instance))
	}, nil
}

// NewQuickScanner creates a scanner bounded by QuickScanTimeout
func NewQuickScanner() *Scanner {
	return &Scanner{
		Timeout: QuickScanTimeout,
	}
}

// QuickScan performs a fast scan with QuickScanTimeout
func QuickScan(ctx context.Context) ([]*Keypad, error) {
	return NewQuickScanner().ScanForKeypads(ctx)
}

func joinHostPort(ip string, port int) string {
	return net.JoinHostPort(ip, strconv.Itoa(port))
}
