// Package frames captures, parses and renders call-stack frames. The
// functions here hold no shared mutable state so that the fatal-signal
// path can build a report from scratch without touching the printer.
package frames

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"dout/internal/demangle"
)

// MaxBacktrace caps the number of frames a single capture may return.
const MaxBacktrace = 50

// Frame is one parsed entry of a call stack. Fields left empty or zero
// mean the corresponding information was not present in the source.
type Frame struct {
	PC           uintptr
	Module       string // binary or source file owning the frame
	Symbol       string // raw, possibly mangled symbol name
	FuncOffset   uint64 // bytes into the function
	ModuleOffset uint64 // load offset within the module
}

// ParseRaw splits one line of glibc backtrace_symbols output, of the form
//
//	module(symbol+0x1c) [0x400123]
//
// into its parts. A missing delimiter yields empty fields, never an error;
// raw frame formats vary across platforms and a partial parse is still
// useful output.
func ParseRaw(line string) Frame {
	var f Frame
	line = strings.TrimSpace(line)

	open := strings.IndexByte(line, '(')
	if open < 0 {
		f.Module = line
		return f
	}
	f.Module = line[:open]

	rest := line[open+1:]
	inner := rest
	if end := strings.IndexByte(rest, ')'); end >= 0 {
		inner = rest[:end]
	}
	if plus := strings.IndexByte(inner, '+'); plus >= 0 {
		f.Symbol = inner[:plus]
		f.FuncOffset = parseHex(inner[plus+1:])
	} else {
		f.Symbol = inner
	}

	if lb := strings.IndexByte(rest, '['); lb >= 0 {
		tail := rest[lb+1:]
		if rb := strings.IndexByte(tail, ']'); rb >= 0 {
			f.ModuleOffset = parseHex(strings.TrimSpace(tail[:rb]))
		}
	}
	return f
}

func parseHex(s string) uint64 {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0
	}
	return v
}

// Render writes the frames to w, one line per frame. Verbose mode shows
// module, readable name and both offsets; compact mode shows names only.
// Writes are best-effort: a failing destination must not disturb the
// caller, matching the fire-and-forget nature of diagnostics.
func Render(w io.Writer, frs []Frame, compact bool) {
	if !Available {
		fmt.Fprintln(w, "dout: stack trace not available in this build")
		return
	}
	if !compact {
		fmt.Fprintf(w, "dout obtained %d stack frames:\n", len(frs))
	}
	if len(frs) == 0 {
		return
	}

	if demangle.Enabled {
		renderDemangled(w, frs, compact)
	} else {
		renderRaw(w, frs, compact)
	}
	if !compact {
		fmt.Fprintln(w)
	}
}

func renderDemangled(w io.Writer, frs []Frame, compact bool) {
	names := make([]string, len(frs))
	statuses := make([]demangle.Status, len(frs))
	width := 0
	for i, f := range frs {
		name, status := demangle.Demangle(f.Symbol)
		if status == demangle.StatusInvalidName {
			name = f.Symbol // readable already, or at least displayable
		}
		names[i], statuses[i] = name, status
		if n := runewidth.StringWidth(name); n > width {
			width = n
		}
	}

	for i, f := range frs {
		if f.Symbol == "" {
			fmt.Fprintln(w, "  (no symbol data for this frame: binary may lack a symbol table)")
			continue
		}
		switch statuses[i] {
		case demangle.StatusAllocFailed:
			fmt.Fprintln(w, " error: could not allocate memory for demangled name")
			continue
		case demangle.StatusInvalidArg:
			fmt.Fprintln(w, " error: invalid argument to demangle")
			continue
		}
		if compact {
			fmt.Fprintln(w, names[i])
			continue
		}
		fmt.Fprintf(w, "  %s:  %s%s\n", f.Module, runewidth.FillRight(names[i], width), offsets(f))
	}
}

// renderRaw is the no-demangler fallback: raw names plus one shell line
// that pipes every symbol through an external demangler.
func renderRaw(w io.Writer, frs []Frame, compact bool) {
	for _, f := range frs {
		if compact {
			fmt.Fprintln(w, f.Symbol)
			continue
		}
		fmt.Fprintf(w, "  %s:  %s%s\n", f.Module, f.Symbol, offsets(f))
	}
	if !compact {
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "echo '' && c++filt")
	for _, f := range frs {
		fmt.Fprintf(w, " %s", f.Symbol)
	}
	fmt.Fprintln(w, " && echo ''")
}

func offsets(f Frame) string {
	var sb strings.Builder
	if f.FuncOffset != 0 {
		fmt.Fprintf(&sb, "  +0x%x", f.FuncOffset)
	}
	if f.ModuleOffset != 0 {
		fmt.Fprintf(&sb, "  [+0x%x]", f.ModuleOffset)
	}
	return sb.String()
}
