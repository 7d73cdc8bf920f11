package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dout"
)

var advancedCmd = &cobra.Command{
	Use:   "advanced",
	Short: "Demonstrate stream redirection, ownership and precision",
	Args:  cobra.NoArgs,
	RunE:  runAdvanced,
}

func runAdvanced(cmd *cobra.Command, args []string) error {
	if _, err := setupPrinter(cmd); err != nil {
		return err
	}

	section("normal printing")
	dout.Print("normal printing")
	dout.PrintLabeled("and", 4, " more words: ")

	section("owned file destination")
	f, err := os.CreateTemp("", "dout-*.log")
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	logPath := f.Name()
	if err := dout.SetOwned(f); err != nil {
		return err
	}
	// No escape codes in a file.
	dout.DisableColor()
	dout.PrintLabeled("writing", "to a file from any scope")
	dout.Here()

	section("back to stderr")
	// Installing the borrowed destination closes the owned file.
	if err := dout.SetBorrowed(os.Stderr); err != nil {
		return err
	}
	if err := dout.SetColor("1;34"); err != nil {
		return err
	}
	dout.Here()
	dout.Print("highlighted text")
	dout.PrintLabeled("label", "text")
	dout.PrintLabeled("label", "text", " separator ")

	section("precision")
	if err := dout.SetPrecision(13); err != nil {
		return err
	}
	dout.Print(0.0)

	section("full stack")
	dout.Stack()

	fmt.Printf("file output went to %s\n", logPath)
	return nil
}
