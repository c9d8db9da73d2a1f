package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commit-template/internal/models"
)

func TestTemplate(t *testing.T) {
	t.Run("renders answers and branch", func(t *testing.T) {
		fn, err := Template("message_format", `{{.type}}{{with get "scope"}}({{.}}){{end}}: {{.subject}} [{{.Branch}}]`)
		require.NoError(t, err)

		msg, err := fn(models.Answers{"type": "feat", "subject": "login"}, &models.EffectiveConfig{}, "dev")
		require.NoError(t, err)
		assert.Equal(t, "feat: login [dev]", msg)

		msg, err = fn(models.Answers{"type": "feat", "scope": "api", "subject": "login"}, &models.EffectiveConfig{}, "dev")
		require.NoError(t, err)
		assert.Equal(t, "feat(api): login [dev]", msg)
	})

	t.Run("exposes branch ref and issue prefix", func(t *testing.T) {
		branchFn, err := BranchPattern(`(JIRA-\d+)`)
		require.NoError(t, err)
		cfg := &models.EffectiveConfig{IssuePrefix: "JIRA", BranchFormat: branchFn}

		fn, err := Template("t", `{{.BranchRef}} {{.IssuePrefix}} {{upper .type}}`)
		require.NoError(t, err)

		msg, err := fn(models.Answers{"type": "fix"}, cfg, "bug/JIRA-9")
		require.NoError(t, err)
		assert.Equal(t, "JIRA-9 JIRA FIX", msg)
	})

	t.Run("output is not trimmed", func(t *testing.T) {
		fn, err := Template("t", "{{.subject}}\n")
		require.NoError(t, err)

		msg, err := fn(models.Answers{"subject": "x"}, nil, "main")
		require.NoError(t, err)
		assert.Equal(t, "x\n", msg)
	})

	t.Run("parse errors are reported at compile time", func(t *testing.T) {
		_, err := Template("t", "{{.type")
		assert.Error(t, err)
	})

	t.Run("execution errors are returned", func(t *testing.T) {
		fn, err := Template("t", `{{index .type 5}}`)
		require.NoError(t, err)

		_, err = fn(models.Answers{"type": "feat"}, nil, "main")
		assert.Error(t, err)
	})
}

func TestPreset(t *testing.T) {
	fn, err := Preset(PresetDefault)
	require.NoError(t, err)
	assert.Nil(t, fn)

	fn, err = Preset(PresetConventional)
	require.NoError(t, err)
	require.NotNil(t, fn)
	msg, err := fn(models.Answers{"type": "feat", "subject": "x"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "feat: x", msg)

	_, err = Preset("gitmoji")
	assert.Error(t, err)
}
