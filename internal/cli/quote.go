package cli

import (
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// String renders the command as a single line a POSIX shell would split
// back into the same argument vector.
func (c Command) String() string {
	argv := c.Argv()
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			// Only unquotable input (e.g. NUL bytes) ends up here
			q = strconv.Quote(arg)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}
