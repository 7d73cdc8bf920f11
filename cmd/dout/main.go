package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dout/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "dout",
	Short: "Runtime introspection and tracing playground",
	Long:  `dout drives the dout diagnostic printer: capability-checked printing, readable type names, stack traces and crash reporting`,
}

// main registers subcommands and persistent flags, then executes the root
// command. If command execution returns an error, the process exits with
// status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(flowCmd)
	rootCmd.AddCommand(advancedCmd)
	rootCmd.AddCommand(filtCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to dout.toml (default: search upward from the working directory)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal checks whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
