package report

import (
	"assert-env/internal/cli"
	"assert-env/internal/schema"
	"assert-env/internal/validator"
)

// Report is the outcome of a dry run: what was checked, against which
// config, and everything that failed.
type Report struct {
	Valid      bool              `json:"valid" yaml:"valid" toml:"valid"`
	Config     string            `json:"config" yaml:"config" toml:"config"`
	Command    []string          `json:"command,omitempty" yaml:"command,omitempty" toml:"command,omitempty"`
	Required   map[string]string `json:"required" yaml:"required" toml:"required"`
	Optional   map[string]string `json:"optional" yaml:"optional" toml:"optional"`
	Violations []Entry           `json:"violations" yaml:"violations" toml:"violations"`
}

// Entry is the serializable form of a validator.Violation
type Entry struct {
	Key      string `json:"key" yaml:"key" toml:"key"`
	Section  string `json:"section" yaml:"section" toml:"section"`
	Kind     string `json:"kind" yaml:"kind" toml:"kind"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Expected string `json:"expected" yaml:"expected" toml:"expected"`
	Message  string `json:"message" yaml:"message" toml:"message"`
}

// New builds a Report. cmd may be the zero Command when nothing would run.
func New(configPath string, s schema.Schema, cmd cli.Command, result validator.Result) Report {
	r := Report{
		Valid:      result.Valid(),
		Config:     configPath,
		Required:   typeNames(s.Required),
		Optional:   typeNames(s.Optional),
		Violations: make([]Entry, 0, len(result.Violations)),
	}
	if cmd.Target != "" {
		r.Command = cmd.Argv()
	}

	for _, v := range result.Violations {
		r.Violations = append(r.Violations, Entry{
			Key:      v.Key,
			Section:  string(v.Section),
			Kind:     string(v.Kind),
			Value:    v.Value,
			Expected: v.Expected.String(),
			Message:  v.Message(),
		})
	}

	return r
}

func typeNames(vars map[string]schema.VarType) map[string]string {
	names := make(map[string]string, len(vars))
	for k, t := range vars {
		names[k] = t.String()
	}
	return names
}
