package validator

import (
	"assert-env/internal/environ"
	"assert-env/internal/schema"
)

// Section identifies which part of the schema a variable was declared in
type Section string

const (
	SectionRequired Section = "required"
	SectionOptional Section = "optional"
)

// Kind classifies a violation
type Kind string

const (
	KindMissing Kind = "missing"
	KindEmpty   Kind = "empty"
	KindInvalid Kind = "invalid"
)

// Violation represents a single validation failure
type Violation struct {
	Key      string
	Section  Section
	Kind     Kind
	Value    string         // The offending value, set for KindInvalid
	Expected schema.VarType // The declared type
}

// Result contains all validation outcomes
type Result struct {
	Violations []Violation
}

// Valid reports whether no violations were found
func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Validate checks the environment against the schema.
// It collects all violations rather than stopping at the first one.
// Keys are visited in sorted order so repeated runs report identically.
func Validate(s schema.Schema, lookup environ.Lookup) Result {
	var violations []Violation

	for _, key := range schema.SortedKeys(s.Required) {
		varType := s.Required[key]
		value, present := lookup(key)

		switch {
		case !present:
			violations = append(violations, Violation{
				Key: key, Section: SectionRequired, Kind: KindMissing, Expected: varType,
			})
		case value == "":
			// Required keys reject empty values whatever their declared type
			violations = append(violations, Violation{
				Key: key, Section: SectionRequired, Kind: KindEmpty, Expected: varType,
			})
		case !varType.Validate(value):
			violations = append(violations, Violation{
				Key: key, Section: SectionRequired, Kind: KindInvalid, Value: value, Expected: varType,
			})
		}
	}

	for _, key := range schema.SortedKeys(s.Optional) {
		varType := s.Optional[key]
		value, present := lookup(key)
		if !present {
			continue
		}
		if !varType.Validate(value) {
			violations = append(violations, Violation{
				Key: key, Section: SectionOptional, Kind: KindInvalid, Value: value, Expected: varType,
			})
		}
	}

	return Result{Violations: violations}
}
