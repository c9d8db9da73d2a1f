// Package validation checks commit messages written in the
// "type(scope): subject" convention. It is independent of the formatter,
// whose default "type/[branch] | #id | subject" shape does not pass the
// type prefix rule.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/thomas-vilte/commit-template/internal/regex"
)

// MaxFirstLineLength is counted in characters, not bytes.
const MaxFirstLineLength = 72

const (
	ViolationFirstLineTooLong = "first line too long"
	ViolationEmpty            = "message must not be empty"
	ViolationTypePrefix       = "missing or invalid commit type prefix"
)

// Validate returns every rule the message breaks, in rule order. An empty
// result means the message is acceptable.
func Validate(message string) []string {
	violations := make([]string, 0)

	firstLine, _, _ := strings.Cut(message, "\n")

	if utf8.RuneCountInString(firstLine) > MaxFirstLineLength {
		violations = append(violations, ViolationFirstLineTooLong)
	}

	if strings.TrimSpace(message) == "" {
		violations = append(violations, ViolationEmpty)
	}

	if !regex.TypePrefix.MatchString(firstLine) {
		violations = append(violations, ViolationTypePrefix)
	}

	return violations
}

// StripComments drops the lines git treats as comments in a message file,
// as written by `git commit` into COMMIT_EDITMSG.
func StripComments(message string) string {
	lines := strings.Split(message, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimRight(strings.Join(kept, "\n"), "\n")
}
