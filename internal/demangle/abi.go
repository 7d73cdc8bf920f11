//go:build !dout_nodemangle

package demangle

import (
	"github.com/ianlancetaylor/demangle"
)

// Enabled reports whether a real demangling facility was compiled in.
const Enabled = true

// Demangle converts a mangled symbol or type name into readable form.
// On StatusInvalidName the input is returned unchanged so that callers can
// display it verbatim; Go symbols are already readable and take this path.
func Demangle(mangled string) (string, Status) {
	if mangled == "" {
		return mangled, StatusInvalidArg
	}
	out, err := demangle.ToString(mangled)
	if err != nil {
		// Anything the ABI parser rejects is re-displayed raw.
		return mangled, StatusInvalidName
	}
	return out, StatusOK
}
