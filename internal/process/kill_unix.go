//go:build !windows

package process

import "syscall"

// KillProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillProcessGroup(pid int) {
	// Best-effort cleanup; the caller's Wait provides the fallback
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}

// GroupAttr returns process attributes that start the child in its own
// process group, so KillProcessGroup reaches JVM child processes too.
func GroupAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
