//go:build dout_off

package dout

// enabled gates every entry point. It is a constant so that disabled
// builds fold the whole body of each operation away.
const enabled = false
