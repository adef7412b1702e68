package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExitStatusError carries the exit code of a spawned child that failed.
// It is only produced on platforms without process replacement.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

// IsNotFound checks if the error indicates the command was not found
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, exec.ErrNotFound)
}

// IsPermissionDenied checks if the error indicates permission was denied
func IsPermissionDenied(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, os.ErrPermission)
}
