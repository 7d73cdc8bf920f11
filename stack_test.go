package dout

import (
	"strings"
	"testing"
)

func TestStackVerboseContainsCaller(t *testing.T) {
	p, buf := newBufferPrinter(t)

	p.Stack()

	got := buf.String()
	if !strings.Contains(got, "stack frames:") {
		t.Fatalf("expected a frame-count header, got: %q", got)
	}
	if !strings.Contains(got, "TestStackVerboseContainsCaller") {
		t.Fatalf("trace should start at the caller, got: %q", got)
	}
}

func TestStackLimit(t *testing.T) {
	p, buf := newBufferPrinter(t)

	p.Stack(StackOptions{Limit: 3})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header plus at most three frame lines.
	if len(lines) > 4 {
		t.Fatalf("expected at most 3 frames, got:\n%s", buf.String())
	}
}

func TestStackCompact(t *testing.T) {
	p, buf := newBufferPrinter(t)

	p.Stack(StackOptions{Limit: 1, Compact: true})

	got := strings.TrimRight(buf.String(), "\n")
	if strings.Contains(got, "\n") {
		t.Fatalf("compact one-frame trace should be a single line, got: %q", got)
	}
	if !strings.Contains(got, "TestStackCompact") {
		t.Fatalf("expected the calling function's name, got: %q", got)
	}
	if strings.Contains(got, "0x") || strings.Contains(got, "stack frames") {
		t.Fatalf("compact mode must omit offsets and headers, got: %q", got)
	}
}

func TestFunc(t *testing.T) {
	p, buf := newBufferPrinter(t)

	p.Func()

	got := strings.TrimRight(buf.String(), "\n")
	if !strings.Contains(got, "TestFunc") {
		t.Fatalf("expected the calling function's name, got: %q", got)
	}
}

func TestHere(t *testing.T) {
	p, buf := newBufferPrinter(t)

	p.Here()

	got := buf.String()
	if !strings.HasPrefix(got, "dout.TestHere: ") {
		t.Fatalf("expected a function/line checkpoint, got: %q", got)
	}
}

func TestTraceOnPanic(t *testing.T) {
	p, buf := newBufferPrinter(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("TraceOnPanic must re-panic")
			}
		}()
		func() {
			defer p.TraceOnPanic()
			panic("boom")
		}()
	}()

	got := buf.String()
	if !strings.Contains(got, "panic: boom") {
		t.Fatalf("expected the panic value in the report, got: %q", got)
	}
	if !strings.Contains(got, "stack frames:") {
		t.Fatalf("expected a stack trace in the report, got: %q", got)
	}
}
