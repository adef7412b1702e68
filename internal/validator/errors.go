package validator

import "fmt"

// Message formats a Violation into a human-readable description.
func (v Violation) Message() string {
	switch v.Kind {
	case KindMissing:
		return fmt.Sprintf("%s variable '%s' is missing", v.Section, v.Key)
	case KindEmpty:
		return fmt.Sprintf("%s variable '%s' is empty", v.Section, v.Key)
	case KindInvalid:
		return fmt.Sprintf("%s variable '%s' has invalid value '%s' (expected %s)",
			v.Section, v.Key, v.Value, v.Expected)
	}

	// Fallback to generic message
	return fmt.Sprintf("%s variable '%s': %s", v.Section, v.Key, v.Kind)
}

// Messages formats all violations into a slice of human-readable messages.
func (r Result) Messages() []string {
	messages := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		messages[i] = v.Message()
	}
	return messages
}
