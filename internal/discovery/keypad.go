package discovery

import (
	"fmt"
	"strconv"
	"time"
)

// Keypad is a discovered pinpad bridge
type Keypad struct {
	// Instance is the advertised instance name (e.g., "kitchen")
	Instance string

	// Hostname is the mDNS hostname (e.g., "kiosk.local.")
	Hostname string

	// IP is the bridge address, IPv4 preferred
	IP string

	// Port is the bridge TCP port
	Port int

	// Metadata holds the TXT record key/value pairs
	Metadata map[string]string

	// DiscoveredAt is when the keypad was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable description
func (k *Keypad) String() string {
	return fmt.Sprintf("pinpad %s (%s) at %s", k.Instance, k.Hostname, k.Addr())
}

// Addr returns "ip:port", bracketing IPv6 addresses
func (k *Keypad) Addr() string {
	return joinHostPort(k.IP, k.Port)
}

// Capacity returns the advertised digit capacity, or 0 if absent or malformed
func (k *Keypad) Capacity() int {
	n, err := strconv.Atoi(k.GetMetadata(TxtCapacity))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Path returns the advertised websocket path, defaulting to DefaultPath
func (k *Keypad) Path() string {
	if p := k.GetMetadata(TxtPath); p != "" {
		return p
	}
	return DefaultPath
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (k *Keypad) GetMetadata(key string) string {
	if k.Metadata == nil {
		return ""
	}
	return k.Metadata[key]
}
