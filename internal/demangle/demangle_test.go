package demangle

import "testing"

func TestDemangleWellFormed(t *testing.T) {
	out, status := Demangle("_Z3foov")
	if status != StatusOK {
		t.Fatalf("expected StatusOK, got %v", status)
	}
	if out == "_Z3foov" {
		t.Fatal("expected a demangled form different from the input")
	}
	if out != "foo()" {
		t.Fatalf("unexpected demangled form: %q", out)
	}
}

func TestDemangleTemplatedSymbol(t *testing.T) {
	out, status := Demangle("_ZNSt6vectorIiSaIiEE9push_backERKi")
	if status != StatusOK {
		t.Fatalf("expected StatusOK, got %v", status)
	}
	if out == "_ZNSt6vectorIiSaIiEE9push_backERKi" {
		t.Fatal("expected a demangled form different from the input")
	}
}

func TestDemangleGoSymbolFallsBack(t *testing.T) {
	out, status := Demangle("main.(*Printer).Stack")
	if status != StatusInvalidName {
		t.Fatalf("expected StatusInvalidName, got %v", status)
	}
	if out != "main.(*Printer).Stack" {
		t.Fatalf("fallback must echo the input unmodified, got %q", out)
	}
}

func TestDemangleEmptyInput(t *testing.T) {
	out, status := Demangle("")
	if status != StatusInvalidArg {
		t.Fatalf("expected StatusInvalidArg, got %v", status)
	}
	if out != "" {
		t.Fatalf("unexpected output for empty input: %q", out)
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusOK:          "ok",
		StatusAllocFailed: "allocation failure",
		StatusInvalidName: "invalid mangled name",
		StatusInvalidArg:  "invalid argument",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String(): want %q, got %q", status, want, got)
		}
	}
}
