package diag

import (
	"fmt"
	"sort"
	"strings"
)

// FormatExpected renders the shared "found X, expected one of [A, B]"
// message used by the lexer and the parser. Expected entries are sorted
// so the output is deterministic.
func FormatExpected(found string, expected []string) string {
	exp := make([]string, len(expected))
	copy(exp, expected)
	sort.Strings(exp)
	return fmt.Sprintf("found %s, expected one of [%s]", found, strings.Join(exp, ", "))
}
