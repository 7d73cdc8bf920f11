// Package conf loads optional dout.toml files that seed the CLI's
// printer defaults. Flag values always override file values.
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config mirrors the dout.toml layout.
type Config struct {
	Printer PrinterConfig `toml:"printer"`
	Stack   StackConfig   `toml:"stack"`
}

// PrinterConfig holds display defaults for the printer.
type PrinterConfig struct {
	Color     string `toml:"color"`     // escape code groups, "" keeps the default
	NoColor   bool   `toml:"no_color"`  // disable highlighting entirely
	Precision int    `toml:"precision"` // float display digits
}

// StackConfig holds stack-trace defaults.
type StackConfig struct {
	Limit   int  `toml:"limit"`
	Compact bool `toml:"compact"`
}

// DefaultConfig returns the values used when no file is present.
func DefaultConfig() Config {
	return Config{
		Printer: PrinterConfig{Color: "36", Precision: 5},
	}
}

// Find walks from startDir toward the filesystem root looking for a
// dout.toml, mirroring how build tools locate their manifests.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "dout.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads a config file, filling unset fields with defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Printer.Precision < 0 {
		return Config{}, fmt.Errorf("%s: precision must be non-negative", path)
	}
	return cfg, nil
}
