// Package dout is a runtime introspection and tracing utility: one
// globally reachable output sink that augments ordinary printing with
// capability-checked value printing, readable type names for static and
// runtime types, captured call-stack traces, and an automatic stack
// report when the process receives a fatal signal.
//
// The default printer writes to stdout with cyan highlighting. Every
// operation is also available as a package-level function operating on
// the default printer:
//
//	dout.PrintLabeled("rows", n)
//	dout.Here()
//	dout.Stack(dout.StackOptions{Limit: 8})
//
// The printer is a single-logical-writer object: concurrent use from
// multiple goroutines requires external serialization. Building with the
// dout_off tag turns every operation into a no-op; dout_nostack,
// dout_nodemangle and dout_nosignals degrade individual facets.
package dout

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Configuration errors indicate programmer mistakes and fail fast at the
// call site. Everything else the printer handles locally.
var (
	// ErrNilDestination is returned when a destination reconfiguration
	// receives nil.
	ErrNilDestination = errors.New("dout: nil destination")
	// ErrInvalidColor is returned by SetColor for malformed color codes.
	ErrInvalidColor = errors.New("dout: invalid color code")
	// ErrInvalidPrecision is returned by SetPrecision for negative digit
	// counts.
	ErrInvalidPrecision = errors.New("dout: negative precision")
)

// Printer owns the active output destination and the display state used
// by every printing entry point. The zero value is not usable; call New.
type Printer struct {
	out   io.Writer
	owned io.Closer // non-nil when the printer owns out
	prec  int
	hcol  string // highlight escape, empty when color is off
	hcolR string // highlight reset
	in    io.Reader
}

// New returns a printer writing to stdout with the default precision of
// five digits and cyan highlighting.
func New() *Printer {
	return &Printer{
		out:   os.Stdout,
		prec:  5,
		hcol:  "\x1b[36m",
		hcolR: "\x1b[0m",
		in:    os.Stdin,
	}
}

// std is allocated at package init and intentionally never torn down, so
// that signal reporting stays valid through arbitrary shutdown ordering.
var std = New()

// Default returns the process-wide printer.
func Default() *Printer { return std }

// SetBorrowed installs a destination the caller continues to own; the
// printer will never close it. Any previously owned destination is
// released first.
func (p *Printer) SetBorrowed(w io.Writer) error {
	if !enabled {
		return nil
	}
	if w == nil {
		return ErrNilDestination
	}
	p.releaseOwned()
	p.out = w
	return nil
}

// SetOwned transfers ownership of the destination to the printer, which
// becomes responsible for closing it when it is replaced. Taking
// ownership of a resource that cannot be closed is rejected by the
// parameter type; a nil value fails fast.
func (p *Printer) SetOwned(wc io.WriteCloser) error {
	if !enabled {
		return nil
	}
	if wc == nil {
		return ErrNilDestination
	}
	p.releaseOwned()
	p.out = wc
	p.owned = wc
	return nil
}

func (p *Printer) releaseOwned() {
	if p.owned != nil {
		// Best effort: a failed close must not disturb reconfiguration.
		_ = p.owned.Close()
		p.owned = nil
	}
}

// SetPrecision sets the number of decimal digits used for float values.
func (p *Printer) SetPrecision(digits int) error {
	if !enabled {
		return nil
	}
	if digits < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, digits)
	}
	p.prec = digits
	return nil
}

// SetInput replaces the source Pause reads operator input from. It exists
// for tests and embedding; the default is stdin.
func (p *Printer) SetInput(r io.Reader) {
	if r != nil {
		p.in = r
	}
}

// write pushes one preformatted chunk to the destination as a single
// write. Errors are dropped: diagnostics are fire-and-forget and must not
// disturb the program under inspection.
func (p *Printer) write(s string) {
	if _, err := io.WriteString(p.out, s); err != nil {
		_ = err
	}
}
