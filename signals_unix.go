//go:build unix && !dout_nosignals && !dout_off

package dout

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"dout/internal/frames"
)

// fatalSignals is the fixed set reported before the process dies. SIGQUIT
// is left alone: the Go runtime already dumps goroutines on it.
var fatalSignals = []os.Signal{
	unix.SIGSEGV,
	unix.SIGBUS,
	unix.SIGFPE,
	unix.SIGILL,
	unix.SIGABRT,
	unix.SIGTRAP,
}

// init arms the crash reporter together with the default printer, so a
// trace is produced even if no dout entry point was ever called.
func init() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, fatalSignals...)
	go func() {
		sig := <-ch
		reportFatalSignal(sig)
	}()
}

// reportFatalSignal writes a notice and a fresh verbose trace, then
// restores the signal's default disposition and re-raises it so the
// platform's normal fatal behavior (termination, core dump) proceeds.
// It deliberately uses only local state: the shared printer may be
// mid-write when the signal lands, so stderr and freshly captured frames
// are the only things trusted here.
func reportFatalSignal(sig os.Signal) {
	fmt.Fprintf(os.Stderr, "dout: received %s, stack trace follows\n", sig)
	frs := frames.Capture(1, frames.MaxBacktrace)
	frames.Render(os.Stderr, frs, false)

	signal.Reset(sig)
	if s, ok := sig.(unix.Signal); ok {
		_ = unix.Kill(unix.Getpid(), s)
	}
}
