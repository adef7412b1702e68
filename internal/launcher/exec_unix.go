//go:build unix

package launcher

import (
	"os/exec"
	"syscall"

	"assert-env/internal/cli"
)

// Exec turns assert-env into cmd via execve, forwarding environ untouched.
// It only returns when the command could not be started. The !unix build
// spawns a child instead.
func Exec(cmd cli.Command, environ []string) error {
	execPath, err := exec.LookPath(cmd.Target)
	if err != nil {
		return err
	}

	// syscall.Exec does not return on success
	return syscall.Exec(execPath, cmd.Argv(), environ)
}
