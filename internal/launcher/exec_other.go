//go:build !unix

package launcher

import (
	"errors"
	"os"
	"os/exec"

	"assert-env/internal/cli"
)

// Exec runs the target command as a child process and waits for it.
// Process replacement is unavailable here, so the child inherits stdio and
// a non-zero exit is reported as *ExitStatusError for the caller to propagate.
func Exec(cmd cli.Command, environ []string) error {
	execPath, err := exec.LookPath(cmd.Target)
	if err != nil {
		return err
	}

	c := exec.Command(execPath, cmd.Args...)
	c.Env = environ
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitStatusError{Code: exitErr.ExitCode()}
		}
		return err
	}
	return nil
}
