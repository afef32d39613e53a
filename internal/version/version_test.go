package version

import (
	"strings"
	"testing"
)

func TestInitPopulates(t *testing.T) {
	if Version == "" {
		t.Error("Version should never be empty after init")
	}
	if Commit == "" {
		t.Error("Commit should never be empty after init")
	}
}

func TestFull(t *testing.T) {
	got := Full()
	if !strings.Contains(got, Version) || !strings.Contains(got, Commit) {
		t.Errorf("Full() = %q, want version and commit", got)
	}
}

func TestShort(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	tests := []struct {
		version string
		want    string
	}{
		{"v1.2.3", "v1.2.3"},
		{"dev-20260101-120000", "dev"},
		{"dev-20260101", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			Version = tt.version
			if got := Short(); got != tt.want {
				t.Errorf("Short() = %q, want %q", got, tt.want)
			}
		})
	}
}
