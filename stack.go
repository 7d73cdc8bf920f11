package dout

import (
	"fmt"
	"runtime"

	"dout/internal/frames"
)

// StackOptions controls a stack-trace request. The zero value prints the
// full (capped) stack in verbose form starting at the caller.
type StackOptions struct {
	Limit   int  // maximum frames to print; 0 means the full capped stack
	Compact bool // names only, no module or offset columns
	Skip    int  // extra frames to skip above the caller
}

// Stack captures the current call stack and prints it to the printer's
// destination. A stack with zero unwindable frames reports a frame count
// of zero; it is not an error.
func (p *Printer) Stack(opts ...StackOptions) {
	if !enabled {
		return
	}
	var o StackOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	p.trace(o, 1)
}

// trace is shared by every stack entry point. extra counts the wrapper
// frames sitting between the user and this function.
func (p *Printer) trace(opts StackOptions, extra int) {
	frs := frames.Capture(opts.Skip+extra+1, opts.Limit)
	frames.Render(p.out, frs, opts.Compact)
}

// Func prints the name of the calling function as a compact one-frame
// trace.
func (p *Printer) Func() {
	if !enabled {
		return
	}
	p.trace(StackOptions{Limit: 1, Compact: true}, 1)
}

// Here prints the calling function and line as a highlighted checkpoint.
func (p *Printer) Here() {
	if !enabled {
		return
	}
	p.here(2)
}

func (p *Printer) here(skip int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		p.printLabeled(defaultLabel, "(unknown location)", " ")
		return
	}
	name := "?"
	if f := runtime.FuncForPC(pc); f != nil {
		name = f.Name()
	}
	p.printLabeled(name, line, ": ")
}

// TraceOnPanic prints a stack trace when the surrounding function is
// unwinding from a panic, then re-panics. Use it deferred:
//
//	defer dout.Default().TraceOnPanic()
//
// Hard faults in pure Go code surface as panics rather than signals, so
// this covers the crash class the fatal-signal handler never sees.
func (p *Printer) TraceOnPanic() {
	if !enabled {
		return
	}
	r := recover()
	if r == nil {
		return
	}
	p.reportPanic(r)
	panic(r)
}

func (p *Printer) reportPanic(r any) {
	p.write(fmt.Sprintf("dout: panic: %v, stack trace follows\n", r))
	frs := frames.Capture(3, frames.MaxBacktrace)
	frames.Render(p.out, frs, false)
}
