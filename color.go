package dout

import (
	"fmt"
	"strings"
)

// SetColor sets the highlight color from a terminal escape code of one or
// two semicolon-separated digit groups, for example "36" or "1;34". A
// group containing anything but digits is a configuration error.
func (p *Printer) SetColor(code string) error {
	if !enabled {
		return nil
	}
	if err := validateColor(code); err != nil {
		return err
	}
	p.hcol = "\x1b[" + code + "m"
	p.hcolR = "\x1b[0m"
	return nil
}

// DisableColor clears both highlight escapes so that output carries no
// escape sequences, safe for file destinations.
func (p *Printer) DisableColor() {
	if !enabled {
		return
	}
	p.hcol = ""
	p.hcolR = ""
}

func validateColor(code string) error {
	groups := strings.Split(code, ";")
	if len(groups) > 2 {
		return fmt.Errorf("%w: %q", ErrInvalidColor, code)
	}
	for _, g := range groups {
		if g == "" {
			return fmt.Errorf("%w: %q", ErrInvalidColor, code)
		}
		for _, c := range g {
			if c < '0' || c > '9' {
				return fmt.Errorf("%w: %q", ErrInvalidColor, code)
			}
		}
	}
	return nil
}
