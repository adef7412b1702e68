package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"assert-env/internal/cli"
	"assert-env/internal/settings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
)

// Render serializes the report in one of the settings.Format* formats.
func (r Report) Render(format string) ([]byte, error) {
	switch format {
	case settings.FormatText, "":
		return []byte(r.FormatCLI()), nil
	case settings.FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case settings.FormatYAML:
		return yaml.Marshal(&r)
	case settings.FormatTOML:
		return toml.Marshal(r)
	}
	return nil, fmt.Errorf("unknown format '%s'", format)
}

// FormatCLI formats the report for terminal output.
func (r Report) FormatCLI() string {
	var sb strings.Builder

	if r.Valid {
		sb.WriteString(okStyle.Render("✓ Config valid"))
	} else {
		sb.WriteString(failStyle.Render(fmt.Sprintf("❌ Config invalid: %d violation(s)", len(r.Violations))))
	}
	sb.WriteString(fmt.Sprintf(" (%s)\n", r.Config))

	writeVars := func(title string, vars map[string]string) {
		if len(vars) == 0 {
			return
		}
		sb.WriteString("\n" + sectionStyle.Render(title) + "\n")
		width := 0
		for k := range vars {
			width = max(width, len(k))
		}
		for _, k := range sortedNames(vars) {
			sb.WriteString(fmt.Sprintf("  %-*s  %s\n", width, k, vars[k]))
		}
	}
	writeVars("Required:", r.Required)
	writeVars("Optional:", r.Optional)

	if len(r.Violations) > 0 {
		sb.WriteString("\n" + sectionStyle.Render("Violations:") + "\n")
		for _, v := range r.Violations {
			sb.WriteString("  " + v.Message + "\n")
		}
	}

	if len(r.Command) > 0 {
		verb := "Would execute"
		if !r.Valid {
			verb = "Blocked"
		}
		cmd := cli.Command{Target: r.Command[0], Args: r.Command[1:]}
		sb.WriteString(fmt.Sprintf("\n%s: %s\n", verb, cmd))
	}

	return sb.String()
}

func sortedNames(vars map[string]string) []string {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
