package regex

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypePrefix(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"feat: add login", true},
		{"fix(api): handle nil", true},
		{"chore(ci-build): bump", true},
		{"feature: add login", false},
		{"fix(API): handle nil", false},
		{"feat add login", false},
		{"feat/[main] | #1 | add", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, TypePrefix.MatchString(tt.input))
		})
	}
}

func TestDefaultFormat(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"feat/[main] | #123 | add new feature", true},
		{"perf/[feature/cache] | #7 | faster lookups", true},
		{"feat | #1 | no branch", true},
		{"feat/[main] | #abc | add", false},
		{"feat/[main] | #1 | ", false},
		{"feat: add new feature", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultFormat.MatchString(tt.input))
		})
	}
}

func TestFormatPattern(t *testing.T) {
	custom := regexp.MustCompile(FormatPattern([]string{"feat", "deploy", "c++"}))

	assert.True(t, custom.MatchString("deploy/[main] | #1 | ship it"))
	assert.True(t, custom.MatchString("c++/[main] | #2 | bindings"))
	assert.False(t, custom.MatchString("fix/[main] | #3 | not configured"))
	assert.False(t, custom.MatchString("cc/[main] | #4 | escaped"))

	assert.Equal(t, DefaultFormatPattern, FormatPattern(nil))
	assert.False(t, DefaultFormat.MatchString("deploy/[main] | #1 | ship it"))
}
