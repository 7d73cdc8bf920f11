package dout

import (
	"bytes"
	"errors"
	"testing"
)

func TestSetColorValid(t *testing.T) {
	cases := []string{"0", "36", "31", "1;34", "0;95"}
	for _, code := range cases {
		p := New()
		if err := p.SetColor(code); err != nil {
			t.Errorf("SetColor(%q) failed: %v", code, err)
			continue
		}
		if p.hcol == "" || p.hcolR == "" {
			t.Errorf("SetColor(%q) left empty escape sequences", code)
		}
		if p.hcol != "\x1b["+code+"m" {
			t.Errorf("SetColor(%q): unexpected start escape %q", code, p.hcol)
		}
	}
}

func TestSetColorInvalid(t *testing.T) {
	cases := []string{"", ";", "1;", ";34", "3a", "1;3x", "bold", "1;34;7", "-1"}
	for _, code := range cases {
		p := New()
		if err := p.SetColor(code); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("SetColor(%q): expected ErrInvalidColor, got %v", code, err)
		}
	}
}

func TestDisableColorYieldsPlainOutput(t *testing.T) {
	p := New()
	var buf bytes.Buffer
	if err := p.SetBorrowed(&buf); err != nil {
		t.Fatalf("SetBorrowed failed: %v", err)
	}
	if err := p.SetColor("36"); err != nil {
		t.Fatalf("SetColor failed: %v", err)
	}
	p.DisableColor()

	if p.hcol != "" || p.hcolR != "" {
		t.Fatal("DisableColor must clear both escape sequences")
	}

	p.PrintLabeled("label", 42)
	if got := buf.String(); got != "label: 42\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}
