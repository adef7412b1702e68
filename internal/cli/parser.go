package cli

import (
	"errors"
)

// ErrNoCommand is returned when no command follows the flags
var ErrNoCommand = errors.New("no command provided: usage: assert-env [-f <path>] <command> [args...]")

// ErrEmptyCommand is returned when a single command string tokenizes to nothing
var ErrEmptyCommand = errors.New("empty command provided")

// Command represents the program to launch after validation
type Command struct {
	Target string   // The binary to execute (e.g., "node")
	Args   []string // Arguments to pass (e.g., ["index.js"])
}

// Argv returns the full argument vector, target first
func (c Command) Argv() []string {
	return append([]string{c.Target}, c.Args...)
}

// ParseCommand turns the positional arguments that follow the flags into a Command.
// A single argument is split with Tokenize, so `assert-env "node index.js"` works;
// multiple arguments are taken verbatim with the first one as the target.
func ParseCommand(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return Command{}, ErrNoCommand
	case 1:
		parts := Tokenize(args[0])
		if len(parts) == 0 {
			return Command{}, ErrEmptyCommand
		}
		return Command{Target: parts[0], Args: parts[1:]}, nil
	default:
		return Command{Target: args[0], Args: args[1:]}, nil
	}
}

// WantsHelp reports whether -h or --help appears anywhere in args.
// Help takes precedence over every other argument, including the command.
func WantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}
