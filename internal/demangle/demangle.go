// Package demangle converts ABI-mangled symbol and type names into
// human-readable form. It is a pure string transform with no dependencies
// on the rest of the module, so it is safe to call from restricted
// contexts such as signal reporting.
//
// Building with the dout_nodemangle tag replaces the demangler with an
// identity transform at compile time; callers can inspect Enabled to emit
// an external-demangler fallback instead.
package demangle

// Status reports the outcome of a demangle attempt.
type Status uint8

const (
	// StatusOK means the name was demangled successfully.
	StatusOK Status = iota
	// StatusAllocFailed means memory for the demangled form could not be
	// obtained.
	StatusAllocFailed
	// StatusInvalidName means the input is not a valid mangled name under
	// the ABI rules; callers should display the raw input verbatim.
	StatusInvalidName
	// StatusInvalidArg means the input was unusable (for example empty).
	StatusInvalidArg
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAllocFailed:
		return "allocation failure"
	case StatusInvalidName:
		return "invalid mangled name"
	case StatusInvalidArg:
		return "invalid argument"
	}
	return "unknown"
}
