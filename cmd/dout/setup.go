package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dout"
	"dout/internal/conf"
)

// setupPrinter resolves configuration for the default printer from an
// optional dout.toml and the persistent flags, applies it, and returns
// the loaded config so commands can pick up their own defaults.
func setupPrinter(cmd *cobra.Command) (conf.Config, error) {
	root := cmd.Root()

	cfgPath, err := root.PersistentFlags().GetString("config")
	if err != nil {
		return conf.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg := conf.DefaultConfig()
	switch {
	case cfgPath != "":
		if cfg, err = conf.Load(cfgPath); err != nil {
			return conf.Config{}, err
		}
	default:
		if path, ok, ferr := conf.Find("."); ferr == nil && ok {
			if cfg, err = conf.Load(path); err != nil {
				return conf.Config{}, err
			}
		}
	}

	colorMode, err := root.PersistentFlags().GetString("color")
	if err != nil {
		return conf.Config{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorMode {
	case "on":
		cfg.Printer.NoColor = false
	case "off":
		cfg.Printer.NoColor = true
	case "auto":
		if !isTerminal(os.Stdout) {
			cfg.Printer.NoColor = true
		}
	default:
		return conf.Config{}, fmt.Errorf("invalid color mode %q (expected auto|on|off)", colorMode)
	}

	p := dout.Default()
	if cfg.Printer.NoColor {
		p.DisableColor()
	} else if cfg.Printer.Color != "" {
		if err := p.SetColor(cfg.Printer.Color); err != nil {
			return conf.Config{}, err
		}
	}
	if err := p.SetPrecision(cfg.Printer.Precision); err != nil {
		return conf.Config{}, err
	}
	return cfg, nil
}
