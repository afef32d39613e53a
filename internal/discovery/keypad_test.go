package discovery

import "testing"

func TestKeypad_String(t *testing.T) {
	keypad := &Keypad{
		Instance: "kitchen",
		Hostname: "kiosk.local.",
		IP:       "192.168.4.16",
		Port:     7070,
	}

	expected := "pinpad kitchen (kiosk.local.) at 192.168.4.16:7070"
	if keypad.String() != expected {
		t.Errorf("Keypad.String() = %v, want %v", keypad.String(), expected)
	}
}

func TestKeypad_Addr(t *testing.T) {
	tests := []struct {
		name     string
		keypad   *Keypad
		expected string
	}{
		{
			name:     "IPv4",
			keypad:   &Keypad{IP: "10.0.0.5", Port: 7070},
			expected: "10.0.0.5:7070",
		},
		{
			name:     "IPv6",
			keypad:   &Keypad{IP: "fe80::1", Port: 9000},
			expected: "[fe80::1]:9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.keypad.Addr(); got != tt.expected {
				t.Errorf("Keypad.Addr() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKeypad_Capacity(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]string
		want     int
	}{
		{"present", map[string]string{"capacity": "6"}, 6},
		{"absent", map[string]string{}, 0},
		{"nil metadata", nil, 0},
		{"malformed", map[string]string{"capacity": "six"}, 0},
		{"negative", map[string]string{"capacity": "-1"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := &Keypad{Metadata: tt.metadata}
			if got := k.Capacity(); got != tt.want {
				t.Errorf("Keypad.Capacity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeypad_Path(t *testing.T) {
	k := &Keypad{}
	if k.Path() != DefaultPath {
		t.Errorf("Keypad.Path() = %q, want %q", k.Path(), DefaultPath)
	}

	k.Metadata = map[string]string{"path": "/pad"}
	if k.Path() != "/pad" {
		t.Errorf("Keypad.Path() = %q, want /pad", k.Path())
	}
}
