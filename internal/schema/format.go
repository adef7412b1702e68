package schema

import (
	"bytes"
	"fmt"
)

// Format renders the schema back into config text.
// Keys are sorted within each section so the output is deterministic, and
// Parse(s.Format()) yields a schema equal to s.
func (s Schema) Format() []byte {
	var buf bytes.Buffer

	writeSection := func(name string, vars map[string]VarType) {
		if len(vars) == 0 {
			return
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "[%s]\n", name)
		for _, key := range SortedKeys(vars) {
			fmt.Fprintf(&buf, "%s = %s\n", key, vars[key])
		}
	}

	writeSection(sectionRequired, s.Required)
	writeSection(sectionOptional, s.Optional)

	return buf.Bytes()
}
