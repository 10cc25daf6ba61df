//go:build windows

package runner

import (
	"os/exec"
)

func setupProcessGroup(cmd *exec.Cmd) {}

func killProcess(cmd *exec.Cmd) error {
	return cmd.Process.Kill()
}
