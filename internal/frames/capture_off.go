//go:build dout_nostack

package frames

// Available reports whether stack capture was compiled in.
const Available = false

// Capture always returns no frames in builds without stack capture.
func Capture(skip, limit int) []Frame {
	return nil
}
