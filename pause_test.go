package dout

import (
	"strings"
	"testing"
)

func TestPauseReadsOneLine(t *testing.T) {
	p, buf := newBufferPrinter(t)
	p.SetInput(strings.NewReader("ok\n"))

	p.Pause("and now we continue")

	got := buf.String()
	if !strings.Contains(got, "paused (and now we continue)") {
		t.Fatalf("expected a labeled pause notice, got: %q", got)
	}
}

func TestPauseIfFalseConsumesNothing(t *testing.T) {
	p, buf := newBufferPrinter(t)
	in := strings.NewReader("should stay\n")
	p.SetInput(in)

	p.PauseIf(false)

	if buf.Len() != 0 {
		t.Errorf("PauseIf(false) must not write, got: %q", buf.String())
	}
	if in.Len() != len("should stay\n") {
		t.Errorf("PauseIf(false) must not consume input")
	}
}

func TestPauseAtEOF(t *testing.T) {
	p, _ := newBufferPrinter(t)
	p.SetInput(strings.NewReader(""))

	// Exhausted input must not block or panic.
	p.Pause()
}
