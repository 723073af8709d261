// internal/launch/detach_unix.go

//go:build unix

package launch

import "syscall"

// detachedSysProcAttr puts the child in its own session so it survives
// the CLI exiting and never becomes our zombie.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
