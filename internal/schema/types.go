package schema

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// VarType represents the declared type of an environment variable
type VarType int

const (
	TypeString VarType = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeAny
)

// varTypeNames maps each VarType to its canonical config token
var varTypeNames = map[VarType]string{
	TypeString:  "str",
	TypeInteger: "int",
	TypeFloat:   "float",
	TypeBoolean: "bool",
	TypeAny:     "any",
}

// ParseVarType converts a config token into a VarType.
// Surrounding whitespace and one layer of matching quotes are removed first.
// Returns false when the token is not one of str, int, float, bool, any.
func ParseVarType(text string) (VarType, bool) {
	switch unquote(strings.TrimSpace(text)) {
	case "str":
		return TypeString, true
	case "int":
		return TypeInteger, true
	case "float":
		return TypeFloat, true
	case "bool":
		return TypeBoolean, true
	case "any":
		return TypeAny, true
	}
	return 0, false
}

// String returns the canonical token for the type
func (t VarType) String() string {
	if name, ok := varTypeNames[t]; ok {
		return name
	}
	return "VarType(" + strconv.Itoa(int(t)) + ")"
}

// Validate reports whether value satisfies the type
func (t VarType) Validate(value string) bool {
	switch t {
	case TypeString:
		return value != ""
	case TypeInteger:
		_, err := strconv.ParseInt(value, 10, 64)
		return err == nil
	case TypeFloat:
		return isDecimalFloat(value)
	case TypeBoolean:
		return value == "true" || value == "false"
	case TypeAny:
		return true
	}
	return false
}

// isDecimalFloat accepts decimal floating-point syntax only. Go literal
// forms (hex mantissas, digit separators) are rejected, while values too
// large for float64 are well-formed and count as infinity.
func isDecimalFloat(value string) bool {
	if strings.ContainsRune(value, '_') {
		return false
	}
	digits := strings.TrimLeft(value, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// unquote strips a single layer of matching double or single quotes
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Schema holds the variables a command expects in its environment
type Schema struct {
	Required map[string]VarType
	Optional map[string]VarType
}

// New returns an empty Schema ready for assignments
func New() Schema {
	return Schema{
		Required: make(map[string]VarType),
		Optional: make(map[string]VarType),
	}
}

// Keys returns every variable name in the schema, sorted and deduplicated
func (s Schema) Keys() []string {
	seen := make(map[string]bool, len(s.Required)+len(s.Optional))
	keys := make([]string, 0, len(s.Required)+len(s.Optional))
	for _, m := range []map[string]VarType{s.Required, s.Optional} {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys(m map[string]VarType) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
