package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	values := make([]string, 0, len(cfg.Types))
	for _, ct := range cfg.Types {
		values = append(values, ct.Value)
	}
	assert.Equal(t, []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore"}, values)
	assert.Empty(t, cfg.Scopes)
	assert.Empty(t, cfg.IssuePrefix)
	assert.Empty(t, cfg.AdditionalQuestions)
	assert.Nil(t, cfg.MessageFormat)
	assert.Nil(t, cfg.BranchFormat)

	t.Run("returns independent copies", func(t *testing.T) {
		first := Defaults()
		first.Types[0].Value = "changed"

		assert.Equal(t, "feat", Defaults().Types[0].Value)
	})
}

func TestMerge(t *testing.T) {
	t.Run("nil keeps defaults", func(t *testing.T) {
		cfg, err := Merge(nil)

		require.NoError(t, err)
		assert.Equal(t, Defaults().Types, cfg.Types)
	})

	t.Run("lists replace and never concatenate", func(t *testing.T) {
		cfg, err := Merge(&UserConfig{
			Types:  []models.CommitType{{Label: "deploy", Value: "deploy"}},
			Scopes: []string{"api"},
		})

		require.NoError(t, err)
		assert.Equal(t, []models.CommitType{{Label: "deploy", Value: "deploy"}}, cfg.Types)
		assert.Equal(t, []string{"api"}, cfg.Scopes)
	})

	t.Run("empty types keep the defaults", func(t *testing.T) {
		cfg, err := Merge(&UserConfig{Types: []models.CommitType{}})

		require.NoError(t, err)
		assert.Len(t, cfg.Types, 8)
	})

	t.Run("scalars and extra keys", func(t *testing.T) {
		cfg, err := Merge(&UserConfig{IssuePrefix: "JIRA", Extra: map[string]any{"team": "core"}})

		require.NoError(t, err)
		assert.True(t, cfg.HasIssuePrefix())
		assert.Equal(t, "core", cfg.Extra["team"])
	})

	t.Run("message format precedence", func(t *testing.T) {
		custom := func(models.Answers, *models.EffectiveConfig, string) (string, error) { return "custom", nil }

		cfg, err := Merge(&UserConfig{
			MessageFormatFunc: custom,
			MessageFormat:     "template",
			MessagePreset:     "conventional",
		})
		require.NoError(t, err)
		msg, err := cfg.MessageFormat(models.Answers{}, cfg, "main")
		require.NoError(t, err)
		assert.Equal(t, "custom", msg)

		cfg, err = Merge(&UserConfig{MessageFormat: "{{.type}}!", MessagePreset: "conventional"})
		require.NoError(t, err)
		msg, err = cfg.MessageFormat(models.Answers{"type": "feat"}, cfg, "main")
		require.NoError(t, err)
		assert.Equal(t, "feat!", msg)

		cfg, err = Merge(&UserConfig{MessagePreset: "conventional"})
		require.NoError(t, err)
		msg, err = cfg.MessageFormat(models.Answers{"type": "fix", "subject": "x"}, cfg, "main")
		require.NoError(t, err)
		assert.Equal(t, "fix: x", msg)
	})

	t.Run("branch format pattern", func(t *testing.T) {
		cfg, err := Merge(&UserConfig{BranchFormat: `(JIRA-\d+)`})

		require.NoError(t, err)
		ref, ok := cfg.BranchFormat("feature/JIRA-7-x")
		assert.True(t, ok)
		assert.Equal(t, "JIRA-7", ref)
	})

	t.Run("compile errors", func(t *testing.T) {
		_, err := Merge(&UserConfig{MessageFormat: "{{.type"})
		assert.Error(t, err)

		_, err = Merge(&UserConfig{BranchFormat: "("})
		assert.Error(t, err)

		_, err = Merge(&UserConfig{MessagePreset: "gitmoji"})
		assert.Error(t, err)

		_, err = Merge(&UserConfig{AdditionalQuestions: []QuestionConfig{{Name: "x", Kind: "choice", Message: "?"}}})
		assert.Error(t, err)
	})
}

func TestCompileQuestion(t *testing.T) {
	t.Run("text with validation and transform", func(t *testing.T) {
		q, err := compileQuestion(QuestionConfig{
			Name:      "reviewer",
			Message:   "Reviewer:",
			Required:  true,
			Pattern:   `^@\w+$`,
			MaxLength: 10,
			Transform: "lower",
		})
		require.NoError(t, err)

		assert.Equal(t, models.KindText, q.Kind)
		assert.EqualError(t, q.Validate("  "), "reviewer required")
		assert.EqualError(t, q.Validate("@someone-very-long"), "reviewer too long")
		assert.EqualError(t, q.Validate("bob"), "reviewer has an invalid format")
		assert.NoError(t, q.Validate("@Bob"))
		assert.Equal(t, "@bob", q.Filter(" @Bob "))
		assert.Nil(t, q.Filter("   "))
	})

	t.Run("custom error message", func(t *testing.T) {
		q, err := compileQuestion(QuestionConfig{Name: "n", Message: "?", Required: true, ErrorMessage: "say something"})
		require.NoError(t, err)

		assert.EqualError(t, q.Validate(""), "say something")
	})

	t.Run("list transform", func(t *testing.T) {
		q, err := compileQuestion(QuestionConfig{Name: "refs", Message: "?", Transform: "list"})
		require.NoError(t, err)

		assert.Nil(t, q.Validate)
		assert.Equal(t, "A-1, A-2", q.Filter("A-1 ,A-2"))
	})

	t.Run("choice keeps bool values", func(t *testing.T) {
		q, err := compileQuestion(QuestionConfig{
			Name:    "breaking",
			Kind:    "choice",
			Message: "?",
			Choices: []ChoiceConfig{{Label: "No", Value: false}, {Label: "Yes", Value: true}, {Label: "Two", Value: int64(2)}},
		})
		require.NoError(t, err)

		assert.Equal(t, []models.Choice{{Label: "No", Value: false}, {Label: "Yes", Value: true}, {Label: "Two", Value: "2"}}, q.Choices)
	})

	t.Run("confirm default must be bool", func(t *testing.T) {
		_, err := compileQuestion(QuestionConfig{Name: "c", Kind: "confirm", Message: "?", Default: "yes"})
		assert.Error(t, err)

		q, err := compileQuestion(QuestionConfig{Name: "c", Kind: "confirm", Message: "?", Default: true})
		require.NoError(t, err)
		assert.Equal(t, true, q.Default)
	})

	t.Run("when condition", func(t *testing.T) {
		q, err := compileQuestion(QuestionConfig{Name: "d", Message: "?", When: "breaking"})
		require.NoError(t, err)
		assert.True(t, q.When(models.Answers{"breaking": true}))
		assert.False(t, q.When(models.Answers{"breaking": false}))
		assert.False(t, q.When(models.Answers{}))

		q, err = compileQuestion(QuestionConfig{Name: "d", Message: "?", When: "!breaking"})
		require.NoError(t, err)
		assert.True(t, q.When(models.Answers{}))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := compileQuestion(QuestionConfig{Name: "p", Message: "?", Pattern: "("})
		assert.Error(t, err)
	})
}

func TestFind(t *testing.T) {
	dir := t.TempDir()

	_, ok := Find(dir)
	assert.False(t, ok)

	writeFile(t, dir, "commit.config.json", "{}")
	path, ok := Find(dir)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "commit.config.json"), path)

	writeFile(t, dir, "commit.config.toml", "")
	path, ok = Find(dir)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "commit.config.toml"), path)
}

func TestLoad(t *testing.T) {
	t.Run("toml with unknown keys", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "commit.config.toml", `
scopes = ["api", "ui"]
issue_prefix = "JIRA"
team = "core"

[[types]]
label = "feat"
value = "feat"
`)
		user, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"api", "ui"}, user.Scopes)
		assert.Equal(t, "JIRA", user.IssuePrefix)
		assert.Equal(t, []models.CommitType{{Label: "feat", Value: "feat"}}, user.Types)
		assert.Equal(t, map[string]any{"team": "core"}, user.Extra)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "commit.config.yaml", "scopes:\n  - api\nmessage_preset: conventional\n")
		user, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"api"}, user.Scopes)
		assert.Equal(t, "conventional", user.MessagePreset)
		assert.Nil(t, user.Extra)
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "commit.config.json", `{"issue_prefix": "OPS", "branch_format": "(\\d+)"}`)
		user, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "OPS", user.IssuePrefix)
		assert.Equal(t, `(\d+)`, user.BranchFormat)
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "commit.config.toml", "scopes = [")
		_, err := Load(path)

		assert.ErrorIs(t, err, errors.ErrConfigLoad)
	})

	t.Run("validation error names file keys", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "commit.config.toml", `
message_preset = "gitmoji"

[[additional_questions]]
kind = "text"
message = "?"
`)
		_, err := Load(path)

		require.ErrorIs(t, err, errors.ErrConfigInvalid)
		assert.Contains(t, err.Error(), "message_preset: must be one of [default conventional]")
		assert.Contains(t, err.Error(), "additional_questions[0].name: field is required")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "commit.config.toml"))

		assert.ErrorIs(t, err, errors.ErrConfigLoad)
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("no file gives defaults", func(t *testing.T) {
		cfg := Resolve(ctx, t.TempDir())

		assert.Equal(t, Defaults().Types, cfg.Types)
		assert.Empty(t, cfg.Source)
	})

	t.Run("file overrides", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "commit.config.toml", `scopes = ["api"]`)

		cfg := Resolve(ctx, dir)

		assert.Equal(t, []string{"api"}, cfg.Scopes)
		assert.Len(t, cfg.Types, 8)
		assert.Equal(t, path, cfg.Source)
	})

	t.Run("broken file falls back to defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "commit.config.toml", "types = 3")

		cfg := Resolve(ctx, dir)

		assert.Equal(t, Defaults().Types, cfg.Types)
		assert.Empty(t, cfg.Source)
	})

	t.Run("uncompilable file falls back to defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "commit.config.toml", `branch_format = "("`)

		cfg := Resolve(ctx, dir)

		assert.Nil(t, cfg.BranchFormat)
		assert.Empty(t, cfg.Source)
	})
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	user := &UserConfig{
		Types:         []models.CommitType{{Label: "feat", Value: "feat"}},
		Scopes:        []string{"api"},
		IssuePrefix:   "JIRA",
		MessagePreset: "conventional",
		Extra:         map[string]any{"team": "core"},
	}

	for _, name := range FileNames {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			require.NoError(t, Save(ctx, path, user))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, user.Types, loaded.Types)
			assert.Equal(t, user.Scopes, loaded.Scopes)
			assert.Equal(t, user.IssuePrefix, loaded.IssuePrefix)
			assert.Equal(t, user.MessagePreset, loaded.MessagePreset)
			assert.Equal(t, "core", loaded.Extra["team"])
		})
	}

	t.Run("rejects invalid config", func(t *testing.T) {
		err := Save(ctx, filepath.Join(t.TempDir(), "commit.config.toml"), &UserConfig{MessagePreset: "x"})

		assert.ErrorIs(t, err, errors.ErrConfigInvalid)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		err := Save(ctx, filepath.Join(t.TempDir(), "commit.config.ini"), &UserConfig{})

		assert.ErrorIs(t, err, errors.ErrConfigSave)
	})
}

func TestExampleConfig(t *testing.T) {
	var user UserConfig
	_, err := toml.Decode(ExampleConfig(), &user)
	require.NoError(t, err)
	require.NoError(t, Validate(&user))

	cfg, err := Merge(&user)
	require.NoError(t, err)

	assert.Len(t, cfg.Types, 8)
	assert.Equal(t, []string{"frontend", "backend", "api", "ui", "docs"}, cfg.Scopes)
	assert.Equal(t, "JIRA", cfg.IssuePrefix)
	assert.Equal(t, []string{"breaking", "breakingDescription"}, models.Names(cfg.AdditionalQuestions))

	ref, ok := cfg.BranchFormat("feature/JIRA-42-login")
	assert.True(t, ok)
	assert.Equal(t, "JIRA-42", ref)

	msg, err := cfg.MessageFormat(models.Answers{
		"type":                "feat",
		"scope":               "api",
		"subject":             "paginate",
		"breaking":            true,
		"breakingDescription": "offset removed",
	}, cfg, "main")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(msg, "feat(api): paginate\n\nBREAKING CHANGE: offset removed"))
}
