package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected []string
	}{
		{
			name:     "valid with scope",
			message:  "feat(auth): valid subject",
			expected: []string{},
		},
		{
			name:     "valid without scope and with body",
			message:  "docs: update README\n\nAdded installation instructions",
			expected: []string{},
		},
		{
			name:     "first line too long",
			message:  strings.Repeat("feat: a", 20),
			expected: []string{ViolationFirstLineTooLong},
		},
		{
			name:     "empty message",
			message:  "",
			expected: []string{ViolationEmpty, ViolationTypePrefix},
		},
		{
			name:     "whitespace only",
			message:  "  \n\t",
			expected: []string{ViolationEmpty, ViolationTypePrefix},
		},
		{
			name:     "no type",
			message:  "random text no type",
			expected: []string{ViolationTypePrefix},
		},
		{
			name:     "unknown type",
			message:  "deploy: ship it",
			expected: []string{ViolationTypePrefix},
		},
		{
			name:     "scope with uppercase",
			message:  "fix(Auth): x",
			expected: []string{ViolationTypePrefix},
		},
		{
			name:     "default formatter shape",
			message:  "feat/[main] | #123 | add new feature",
			expected: []string{ViolationTypePrefix},
		},
		{
			name:     "only first line is measured",
			message:  "fix: short\n\n" + strings.Repeat("x", 200),
			expected: []string{},
		},
		{
			name:     "exactly 72 characters",
			message:  "chore: " + strings.Repeat("y", 65),
			expected: []string{},
		},
		{
			name:     "multibyte subject within the limit",
			message:  "feat: " + strings.Repeat("д", 60),
			expected: []string{},
		},
		{
			name:     "multibyte subject over the limit",
			message:  "feat: " + strings.Repeat("д", 67),
			expected: []string{ViolationFirstLineTooLong},
		},
		{
			name:     "all violations",
			message:  strings.Repeat(" ", 80),
			expected: []string{ViolationFirstLineTooLong, ViolationEmpty, ViolationTypePrefix},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Validate(tt.message))
		})
	}
}

func TestStripComments(t *testing.T) {
	msg := "fix: x\n\nbody\n# Please enter the commit message\n# On branch main\n"

	assert.Equal(t, "fix: x\n\nbody", StripComments(msg))
}
