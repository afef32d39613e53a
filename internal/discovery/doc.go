// Package discovery advertises and finds PIN pad keypad bridges over mDNS.
//
// A running pinpad with its remote bridge enabled registers itself as a
// "_pinpad._tcp" service. Remote keypads (or "pinpad scan") browse for that
// service type to find a widget to type into.
//
// # TXT Records
//
//   - capacity=N: number of digits the widget accepts
//   - path=/keys: websocket endpoint of the bridge
//   - version=X: pinpad build version
//
// # Usage Example
//
//	shutdown, err := discovery.Advertise("kitchen", 7070, map[string]string{
//	    "capacity": "6",
//	    "path":     "/keys",
//	})
//	if err != nil {
//	    return err
//	}
//	defer shutdown()
//
//	keypads, err := discovery.NewScanner().ScanForKeypads(ctx)
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Widget and keypad must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
