package main

import (
	"errors"
	"fmt"
	"io"

	"assert-env/internal/cli"
	"assert-env/internal/environ"
	"assert-env/internal/launcher"
	"assert-env/internal/logging"
	"assert-env/internal/report"
	"assert-env/internal/schema"
	"assert-env/internal/settings"
	"assert-env/internal/validator"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

// launch is swapped out in tests so the test binary is never replaced
var launch = launcher.Exec

const (
	errorPrefix     = "Error:"
	assertionPrefix = "Assertion Error:"
)

// run orchestrates the full execution flow.
// It returns an exit code (0 for success, non-zero for failure).
// This function is separated from main() to enable testing.
func run(args []string, env []string, stdout, stderr io.Writer) int {
	root := newRootCmd(env, stdout, stderr)

	// Help anywhere on the line wins over everything else, including the
	// wrapped command's own flags.
	if cli.WantsHelp(args) {
		if err := root.Help(); err != nil {
			fmt.Fprintln(stderr, errorPrefix, err)
			return 1
		}
		return 0
	}

	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(stderr, errorPrefix, exitErr.Err)
			}
			return exitErr.Code
		}
		fmt.Fprintln(stderr, errorPrefix, err)
		return 1
	}
	return 0
}

func newRootCmd(env []string, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assert-env [flags] <command> [args...]",
		Short: "Simple runtime assertions for environment variables",
		Long: `assert-env checks the environment against a schema before launching a command.

The schema lists required and optional variables with their types:

  [required]
  PORT = int
  DATABASE_URL = str   # inline comments are allowed

  [optional]
  DEBUG = bool
  RATIO = 'float'
  EXTRA = any

If every assertion holds, assert-env replaces itself with the command and
passes the environment through unchanged. Otherwise it prints every
violation to stderr and exits with status 1.

A single command argument is split like a shell would (quotes group words);
multiple arguments are passed through as-is.`,
		Example: `  assert-env "node index.js"
  assert-env -f config/AssertEnv.toml npm start
  assert-env --dry-run --format json`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssert(cmd, args, env, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	defaults := settings.Default()
	flags.StringP(settings.KeyFile, "f", defaults.File, "path to the schema file (env ASSERT_ENV_FILE)")
	flags.BoolP(settings.KeyVerbose, "v", defaults.Verbose, "enable debug logging on stderr (env ASSERT_ENV_VERBOSE)")
	flags.Bool(settings.KeyDryRun, defaults.DryRun, "validate and print a report instead of launching (env ASSERT_ENV_DRY_RUN)")
	flags.String(settings.KeyFormat, defaults.Format, "dry-run report format: text, json, yaml or toml (env ASSERT_ENV_FORMAT)")

	return cmd
}

// runAssert loads the schema, validates the environment and launches the command.
func runAssert(cmd *cobra.Command, args []string, env []string, stdout, stderr io.Writer) error {
	opts, err := settings.Load(cmd.Flags(), env)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	logger := logging.New(stderr, opts.Verbose)

	target, err := cli.ParseCommand(args)
	if err != nil && !(opts.DryRun && errors.Is(err, cli.ErrNoCommand)) {
		return &ExitError{Code: 1, Err: err}
	}

	s, err := schema.LoadFromPath(opts.File)
	if err != nil {
		return &ExitError{Code: 1, Err: describeLoadError(err)}
	}
	logger.Debug("loaded schema", "path", opts.File, "required", len(s.Required), "optional", len(s.Optional))

	result := validator.Validate(s, environ.FromSlice(env))
	logger.Debug("validated environment", "violations", len(result.Violations))

	if opts.DryRun {
		return writeReport(report.New(opts.File, s, target, result), opts.Format, stdout)
	}

	if !result.Valid() {
		for _, msg := range result.Messages() {
			fmt.Fprintln(stderr, assertionPrefix, msg)
		}
		return &ExitError{Code: 1}
	}

	logger.Debug("launching", "command", target.String())
	return launchCommand(target, env, logger)
}

func describeLoadError(err error) error {
	var perr *schema.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("parsing config failed: %w", err)
	}
	return err
}

func writeReport(r report.Report, format string, stdout io.Writer) error {
	out, err := r.Render(format)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("cannot format report: %w", err)}
	}
	if _, err := stdout.Write(out); err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("cannot write report: %w", err)}
	}
	if !r.Valid {
		return &ExitError{Code: 1}
	}
	return nil
}

func launchCommand(target cli.Command, env []string, logger *log.Logger) error {
	err := launch(target, env)
	if err == nil {
		return nil
	}

	var status *launcher.ExitStatusError
	if errors.As(err, &status) {
		return &ExitError{Code: status.Code}
	}

	switch {
	case launcher.IsNotFound(err):
		logger.Debug("command not found", "target", target.Target)
	case launcher.IsPermissionDenied(err):
		logger.Debug("permission denied", "target", target.Target)
	}
	return &ExitError{Code: 1, Err: fmt.Errorf("failed to execute command '%s': %w", target.Target, err)}
}
