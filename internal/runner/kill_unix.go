//go:build !windows

package runner

import (
	"os/exec"
	"syscall"
)

// setupProcessGroup puts the test binary into its own process group, so
// killing it also kills helpers it spawned. Without this a child process
// inheriting the output pipes would keep the line readers blocked long
// after the test binary itself died.
func setupProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func killProcess(cmd *exec.Cmd) error {
	err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	if err == syscall.ESRCH {
		// Already gone.
		return nil
	}
	return err
}
