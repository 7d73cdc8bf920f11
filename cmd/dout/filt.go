package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dout/internal/frames"
)

var filtCmd = &cobra.Command{
	Use:   "filt [file]",
	Short: "Demangle a textual backtrace from stdin or a file",
	Long:  `Parse glibc-style backtrace lines ("module(symbol+0x1c) [0x400123]"), demangle the symbols and re-render them readably`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFilt,
}

func init() {
	filtCmd.Flags().Bool("compact", false, "print demangled names only")
}

func runFilt(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open backtrace file: %w", err)
		}
		defer f.Close()
		in = f
	}

	compact, err := cmd.Flags().GetBool("compact")
	if err != nil {
		return fmt.Errorf("failed to get compact flag: %w", err)
	}

	var frs []frames.Frame
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		frs = append(frs, frames.ParseRaw(line))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read backtrace: %w", err)
	}

	frames.Render(cmd.OutOrStdout(), frs, compact)
	return nil
}
