package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.Contains(Version, ".") {
		t.Errorf("Version should look semantic, got %q", Version)
	}
}

func TestVersionOverride(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	// Simulate a build-time -ldflags override.
	Version = "1.2.3"
	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
}
