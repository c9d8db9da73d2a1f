// Package regex holds the commit message patterns shared by the validator
// and the commit-msg hook.
package regex

import (
	"regexp"
	"strings"
)

// defaultTypes are the type values of the default configuration.
var defaultTypes = []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore"}

// FormatPattern matches the first line of the default message shape
// "type/[branch] | #task | subject" for the given type values. The result
// is valid both as a Go regexp and as a POSIX extended regexp for grep -E.
// No types means the default ones.
func FormatPattern(types []string) string {
	if len(types) == 0 {
		types = defaultTypes
	}
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return `^(` + strings.Join(quoted, "|") + `)(/.+)? \| #[0-9]+ \| .+`
}

// DefaultFormatPattern is FormatPattern of the default types.
var DefaultFormatPattern = FormatPattern(nil)

var (
	// TypePrefix matches the "type(scope):" head of a conventional message.
	TypePrefix = regexp.MustCompile(`^(` + strings.Join(defaultTypes, "|") + `)(\([a-z-]+\))?:`)

	DefaultFormat = regexp.MustCompile(DefaultFormatPattern)
)
