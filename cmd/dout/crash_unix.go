//go:build unix

package main

import "golang.org/x/sys/unix"

// raiseSegv delivers a real SIGSEGV to the process so the registered
// fatal-signal reporter runs, then the default disposition kills us.
func raiseSegv() {
	_ = unix.Kill(unix.Getpid(), unix.SIGSEGV)
	// Give the reporter goroutine a chance before returning.
	select {}
}
