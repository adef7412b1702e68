// Package environ provides read-only views over a process environment.
package environ

import "strings"

// Lookup returns the value of key and whether it is set.
// An empty value with ok == true means the variable is set but empty.
type Lookup func(key string) (value string, ok bool)

// FromSlice builds a Lookup from an environ slice (format: "KEY=VALUE").
// Values may contain "=", entries without "=" are skipped, and later
// entries override earlier ones.
func FromSlice(environ []string) Lookup {
	env := ParseSlice(environ)
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// ParseSlice converts an environ slice (["KEY=VALUE", ...]) into a map
func ParseSlice(environ []string) map[string]string {
	result := make(map[string]string, len(environ))
	for _, entry := range environ {
		// Split on first "=" only - values can contain "="
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		result[key] = value
	}
	return result
}
