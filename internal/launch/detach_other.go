// internal/launch/detach_other.go

//go:build !unix

package launch

import "syscall"

func detachedSysProcAttr() *syscall.SysProcAttr {
	return nil
}
