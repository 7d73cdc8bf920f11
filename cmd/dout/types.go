package main

import (
	"os"

	"github.com/spf13/cobra"

	"dout"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Demonstrate type and signature printing",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func runTypes(cmd *cobra.Command, args []string) error {
	if _, err := setupPrinter(cmd); err != nil {
		return err
	}

	section("static types")
	dout.Type[[]int]()
	dout.Type[map[string]*os.File]()
	dout.Type[chan<- struct{}]()
	dout.Type[func(int, ...string) (bool, error)]()

	section("runtime types and value category")
	v := []int{42}
	dout.TypeOf(42)
	dout.TypeOf(&v)
	dout.TypeOf(os.Stdout)

	section("variable dumps")
	dout.PrintVar("v[0]", v[0])
	// Slices carry no print support; this takes the diagnostic path.
	dout.PrintVar("v", v)

	dout.Here()
	return nil
}
