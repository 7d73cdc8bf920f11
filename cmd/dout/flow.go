package main

import (
	"github.com/spf13/cobra"

	"dout"
)

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Demonstrate stack traces, checkpoints and crash reporting",
	Args:  cobra.NoArgs,
	RunE:  runFlow,
}

func init() {
	flowCmd.Flags().Int("limit", 0, "maximum stack frames to print (0=all)")
	flowCmd.Flags().Bool("compact", false, "compact stack format, function names only")
	flowCmd.Flags().Bool("pause", false, "pause at checkpoints (reads a line from stdin)")
	flowCmd.Flags().Bool("crash", false, "raise SIGSEGV to demonstrate the crash report")
}

func runFlow(cmd *cobra.Command, args []string) error {
	cfg, err := setupPrinter(cmd)
	if err != nil {
		return err
	}

	opts := dout.StackOptions{Limit: cfg.Stack.Limit, Compact: cfg.Stack.Compact}
	if cmd.Flags().Changed("limit") {
		opts.Limit, _ = cmd.Flags().GetInt("limit")
	}
	if cmd.Flags().Changed("compact") {
		opts.Compact, _ = cmd.Flags().GetBool("compact")
	}
	pause, _ := cmd.Flags().GetBool("pause")
	crash, _ := cmd.Flags().GetBool("crash")

	section("nested stack trace")
	hop1(opts)

	section("checkpoints")
	for i := 0; i < 4; i++ {
		dout.PrintVar("i", i)
		if pause {
			dout.PauseIf(i%2 == 0)
		}
	}

	if crash {
		section("crash report")
		dout.Here()
		raiseSegv()
	}
	return nil
}

// Three hops so the trace has something to show; kept out of line to
// survive inlining at default optimization levels.
func hop1(opts dout.StackOptions) { hop2(opts) }
func hop2(opts dout.StackOptions) { hop3(opts) }
func hop3(opts dout.StackOptions) { dout.Stack(opts) }
