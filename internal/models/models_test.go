package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswers(t *testing.T) {
	t.Run("nil values are absent", func(t *testing.T) {
		a := Answers{}
		a.Set("body", "text")
		a.Set("body", nil)

		assert.False(t, a.Has("body"))
		assert.Equal(t, "", a.String("body"))
	})

	t.Run("truthiness", func(t *testing.T) {
		a := Answers{"breaking": true, "empty": "", "scope": "api", "no": false}

		assert.True(t, a.Bool("breaking"))
		assert.True(t, a.Bool("scope"))
		assert.False(t, a.Bool("empty"))
		assert.False(t, a.Bool("no"))
		assert.False(t, a.Bool("missing"))
	})

	t.Run("merge overwrites", func(t *testing.T) {
		a := Answers{"type": "feat", "scope": "api"}
		a.Merge(Answers{"type": "fix"})

		assert.Equal(t, Answers{"type": "fix", "scope": "api"}, a)
	})
}

func TestStagedFiles(t *testing.T) {
	statuses := []FileStatus{
		{Path: "a.go", Index: ParseIndexState('M')},
		{Path: "b.go", Index: ParseIndexState('?')},
		{Path: "c.go", Index: ParseIndexState('A')},
		{Path: "d.go", Index: ParseIndexState(' '), WorkTree: 'M'},
		{Path: "e.go", Index: ParseIndexState('D')},
		{Path: "f.go", Index: ParseIndexState('R')},
	}

	staged := StagedFiles(statuses)

	var paths []string
	for _, s := range staged {
		paths = append(paths, s.Path)
	}
	assert.Equal(t, []string{"a.go", "c.go", "e.go", "f.go"}, paths)
	assert.Equal(t, IndexUnknown, statuses[1].Index)
}

func TestChoicesFromTypes(t *testing.T) {
	choices := ChoicesFromTypes([]CommitType{{Label: "feat: new", Value: "feat"}, {Label: "fix: bug", Value: "fix"}})

	assert.Equal(t, []Choice{{Label: "feat: new", Value: "feat"}, {Label: "fix: bug", Value: "fix"}}, choices)
}
