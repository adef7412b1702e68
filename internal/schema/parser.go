package schema

import (
	"fmt"
	"os"
	"strings"
)

// DefaultFileName is the config file looked up when no path is given
const DefaultFileName = "AssertEnv.toml"

const (
	sectionRequired = "required"
	sectionOptional = "optional"
)

// ParseError reports the first malformed line of a config file
type ParseError struct {
	Line    int // 1-based
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ReadError reports a config file that could not be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read config file '%s': %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Parse turns config text into a Schema.
// Parsing stops at the first malformed line and returns a *ParseError for it.
func Parse(content []byte) (Schema, error) {
	s := New()
	section := ""

	for i, raw := range strings.Split(string(content), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Inline comments are cut without regard to quoting
		if idx := strings.Index(line, "#"); idx != -1 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Schema{}, &ParseError{Line: lineNo, Message: "invalid line format"}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		varType, ok := ParseVarType(value)
		if !ok {
			return Schema{}, &ParseError{
				Line:    lineNo,
				Message: fmt.Sprintf("invalid type '%s' for key '%s'", value, key),
			}
		}

		switch section {
		case sectionRequired:
			s.Required[key] = varType
		case sectionOptional:
			s.Optional[key] = varType
		default:
			return Schema{}, &ParseError{
				Line:    lineNo,
				Message: "assignment outside of [required] or [optional]",
			}
		}
	}

	return s, nil
}

// LoadFromPath reads and parses the config file at path.
// Read failures are returned as *ReadError, grammar failures as *ParseError.
func LoadFromPath(path string) (Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, &ReadError{Path: path, Err: err}
	}

	return Parse(content)
}
