package dout

import "io"

// Package-level forms of every printer operation, acting on the default
// printer. They exist so that a diagnostic can be dropped into any
// function without plumbing a printer through it.

// SetBorrowed redirects the default printer to a caller-owned destination.
func SetBorrowed(w io.Writer) error { return std.SetBorrowed(w) }

// SetOwned hands the default printer ownership of a destination.
func SetOwned(wc io.WriteCloser) error { return std.SetOwned(wc) }

// SetColor sets the default printer's highlight color code.
func SetColor(code string) error { return std.SetColor(code) }

// DisableColor removes highlighting from the default printer.
func DisableColor() { std.DisableColor() }

// SetPrecision sets the default printer's float display precision.
func SetPrecision(digits int) error { return std.SetPrecision(digits) }

// Print writes a highlighted value under the ">>>" label.
func Print(value any) {
	if !enabled {
		return
	}
	std.printLabeled(defaultLabel, value, " ")
}

// PrintLabeled writes a highlighted "label: value" line.
func PrintLabeled(label, value any, sep ...string) { std.PrintLabeled(label, value, sep...) }

// PrintVar writes a plain "name = value" line.
func PrintVar(name string, value any) { std.PrintVar(name, value) }

// TypeOf prints the runtime type of an expression with its value
// category and, when available, the expression's source text.
func TypeOf(value any) {
	if !enabled {
		return
	}
	std.typeOf(value, 3)
}

// Stack prints the current call stack.
func Stack(opts ...StackOptions) {
	if !enabled {
		return
	}
	var o StackOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	std.trace(o, 1)
}

// Func prints the calling function's name as a compact one-frame trace.
func Func() {
	if !enabled {
		return
	}
	std.trace(StackOptions{Limit: 1, Compact: true}, 1)
}

// Here prints the calling function and line as a highlighted checkpoint.
func Here() {
	if !enabled {
		return
	}
	std.here(2)
}

// Pause blocks until the operator enters a line.
func Pause(label ...string) { std.Pause(label...) }

// PauseIf pauses only when cond holds.
func PauseIf(cond bool, label ...string) { std.PauseIf(cond, label...) }

// TraceOnPanic prints a stack trace while unwinding from a panic, then
// re-panics. Must be deferred directly:
//
//	defer dout.TraceOnPanic()
func TraceOnPanic() {
	if !enabled {
		return
	}
	r := recover()
	if r == nil {
		return
	}
	std.reportPanic(r)
	panic(r)
}
