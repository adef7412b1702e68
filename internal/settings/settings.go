// Package settings resolves assert-env's own options from flags, the
// environment and built-in defaults, in that order of precedence.
package settings

import (
	"fmt"
	"strings"

	"assert-env/internal/environ"
	"assert-env/internal/schema"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every setting read from the environment.
	EnvPrefix = "ASSERT_ENV"

	KeyFile    = "file"
	KeyVerbose = "verbose"
	KeyDryRun  = "dry-run"
	KeyFormat  = "format"
)

// Format values accepted for the dry-run report.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Settings holds the resolved tool options
type Settings struct {
	File    string
	Verbose bool
	DryRun  bool
	Format  string
}

// Default returns the settings used when nothing is configured
func Default() Settings {
	return Settings{
		File:   schema.DefaultFileName,
		Format: FormatText,
	}
}

// Load resolves settings. Flags in fs that were set explicitly win over
// ASSERT_ENV_* entries in env, which win over defaults. env is an
// os.Environ-style slice so callers control exactly what is consulted.
func Load(fs *pflag.FlagSet, env []string) (Settings, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyFile, defaults.File)
	v.SetDefault(KeyVerbose, defaults.Verbose)
	v.SetDefault(KeyDryRun, defaults.DryRun)
	v.SetDefault(KeyFormat, defaults.Format)

	// viper's own env binding goes through os.Getenv, so the prefixed
	// entries are merged in as a config layer instead. That layer still
	// sits below explicitly set flags.
	if err := v.MergeConfigMap(fromEnviron(env)); err != nil {
		return Settings{}, fmt.Errorf("failed to read %s_* settings: %w", EnvPrefix, err)
	}

	if fs != nil {
		for _, key := range keys {
			if f := fs.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("failed to bind flag --%s: %w", key, err)
				}
			}
		}
	}

	s := Settings{
		File:    v.GetString(KeyFile),
		Verbose: v.GetBool(KeyVerbose),
		DryRun:  v.GetBool(KeyDryRun),
		Format:  strings.ToLower(v.GetString(KeyFormat)),
	}

	if s.File == "" {
		return Settings{}, fmt.Errorf("config file path must not be empty")
	}

	// The format only matters for the dry-run report.
	if s.DryRun {
		switch s.Format {
		case FormatText, FormatJSON, FormatYAML, FormatTOML:
		default:
			return Settings{}, fmt.Errorf("unknown format '%s': must be one of text, json, yaml, toml", s.Format)
		}
	}

	return s, nil
}

var keys = []string{KeyFile, KeyVerbose, KeyDryRun, KeyFormat}

// EnvVar returns the environment variable that configures key,
// e.g. "dry-run" -> "ASSERT_ENV_DRY_RUN".
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// fromEnviron picks the non-empty ASSERT_ENV_* entries out of env, keyed
// by setting
func fromEnviron(env []string) map[string]any {
	vars := environ.ParseSlice(env)
	out := make(map[string]any)
	for _, key := range keys {
		if value := vars[EnvVar(key)]; value != "" {
			out[key] = value
		}
	}
	return out
}
