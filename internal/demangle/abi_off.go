//go:build dout_nodemangle

package demangle

// Enabled reports whether a real demangling facility was compiled in.
const Enabled = false

// Demangle is the identity transform in builds without a demangler.
func Demangle(mangled string) (string, Status) {
	return mangled, StatusOK
}
