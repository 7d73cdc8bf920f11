//go:build !dout_nostack

package frames

import (
	"runtime"

	"fortio.org/safecast"
)

// Available reports whether stack capture was compiled in.
const Available = true

// Capture returns up to limit frames of the calling goroutine's stack.
// skip counts frames above the caller of Capture: 0 starts at the caller
// itself. A limit outside (0, MaxBacktrace] is clamped to MaxBacktrace.
// When the unwinder yields more frames than the limit, the outermost
// ones are discarded; the innermost frames are the useful part of a
// diagnostic trace. An unavailable unwinder yields an empty slice.
func Capture(skip, limit int) []Frame {
	if limit <= 0 || limit > MaxBacktrace {
		limit = MaxBacktrace
	}

	// Request one extra pc so that hitting the cap is distinguishable
	// from a stack of exactly limit frames.
	pcs := make([]uintptr, limit+1)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frs := make([]Frame, 0, n)
	it := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := it.Next()
		f := Frame{
			PC:     fr.PC,
			Module: fr.File,
			Symbol: fr.Function,
		}
		if fr.Entry != 0 && fr.PC >= fr.Entry {
			if off, err := safecast.Conv[uint64](fr.PC - fr.Entry); err == nil {
				f.FuncOffset = off
			}
		}
		if off, err := safecast.Conv[uint64](fr.PC); err == nil {
			f.ModuleOffset = off
		}
		frs = append(frs, f)
		if !more {
			break
		}
	}

	// Drop the outermost frame when the capture hit the cap: it is the
	// least useful one and its presence only signals truncation.
	if len(frs) > limit {
		frs = frs[:limit]
	}
	return frs
}
