package dout

import (
	"bufio"
)

// Pause writes a checkpoint notice, optionally labeled, and blocks until
// the operator enters a line (or the input source is exhausted).
func (p *Printer) Pause(label ...string) {
	if !enabled {
		return
	}
	msg := "dout: paused"
	if len(label) > 0 && label[0] != "" {
		msg += " (" + label[0] + ")"
	}
	p.write(msg + ", press <Enter> to continue: ")
	// One throwaway reader per pause: pausing is rare and the input
	// source may be swapped between calls.
	if _, err := bufio.NewReader(p.in).ReadString('\n'); err != nil {
		_ = err
	}
	p.write("\n")
}

// PauseIf pauses only when the condition holds; otherwise it neither
// writes nor consumes input.
func (p *Printer) PauseIf(cond bool, label ...string) {
	if !enabled {
		return
	}
	if cond {
		p.Pause(label...)
	}
}
