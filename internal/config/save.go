package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"gopkg.in/yaml.v3"
)

// Save writes user to path in the format of its extension. Keys kept in
// Extra are written back next to the schema keys.
func Save(ctx context.Context, path string, user *UserConfig) error {
	if user == nil {
		return errors.ErrConfigSave.WithError(fmt.Errorf("nil config")).WithContext("path", path)
	}
	if err := Validate(user); err != nil {
		return errors.ErrConfigInvalid.WithError(err).WithContext("path", path)
	}

	data, err := encode(path, document(user))
	if err != nil {
		return errors.ErrConfigSave.WithError(err).WithContext("path", path)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ErrConfigSave.WithError(err).WithContext("path", path)
	}

	logger.Info(ctx, "config saved", "path", path)
	return nil
}

func document(user *UserConfig) map[string]any {
	doc := make(map[string]any, len(user.Extra)+len(knownKeys))
	for k, v := range user.Extra {
		doc[k] = v
	}

	if len(user.Types) > 0 {
		doc["types"] = user.Types
	}
	if user.Scopes != nil {
		doc["scopes"] = user.Scopes
	}
	if user.IssuePrefix != "" {
		doc["issue_prefix"] = user.IssuePrefix
	}
	if len(user.AdditionalQuestions) > 0 {
		doc["additional_questions"] = user.AdditionalQuestions
	}
	if user.MessageFormat != "" {
		doc["message_format"] = user.MessageFormat
	}
	if user.MessagePreset != "" {
		doc["message_preset"] = user.MessagePreset
	}
	if user.BranchFormat != "" {
		doc["branch_format"] = user.BranchFormat
	}

	return doc
}

func encode(path string, doc map[string]any) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("error encoding TOML: %w", err)
		}
		return buf.Bytes(), nil
	case ".yaml", ".yml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("error encoding YAML: %w", err)
		}
		return data, nil
	case ".json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
}

// ExampleConfig is the commented configuration written by `ct init`.
func ExampleConfig() string {
	return exampleConfig
}

const exampleConfig = `# Commit template configuration.
# Every key is optional. A key that is set replaces the default as a whole.

# Scopes offered after the task id. Remove the key to skip the question.
scopes = ["frontend", "backend", "api", "ui", "docs"]

# Prefix of the related issues question, e.g. JIRA-123.
issue_prefix = "JIRA"

# Built-in message layouts: "default" renders
#   type/[branch] | #taskId | subject
# and "conventional" renders
#   type(scope): subject, body, BREAKING CHANGE and Closes sections.
message_preset = "conventional"

# A Go text/template replaces the preset when set. Answers are available by
# name; .Branch, .BranchRef and .IssuePrefix are provided too.
# message_format = "{{.type}}/[{{.Branch}}] | #{{.taskId}} | {{.subject}}"

# Regular expression applied to the branch name. The first group (or the
# whole match) becomes .BranchRef and, when numeric, the task id default.
branch_format = "(JIRA-\\d+)"

[[types]]
label = "✨ feat: new feature"
value = "feat"

[[types]]
label = "🐛 fix: bug fix"
value = "fix"

[[types]]
label = "📝 docs: documentation"
value = "docs"

[[types]]
label = "💄 style: code style"
value = "style"

[[types]]
label = "♻️ refactor: refactoring"
value = "refactor"

[[types]]
label = "⚡ perf: performance"
value = "perf"

[[types]]
label = "✅ test: tests"
value = "test"

[[types]]
label = "🔧 chore: tooling"
value = "chore"

# Extra questions asked after the built-in ones.
[[additional_questions]]
name = "breaking"
kind = "choice"
message = "Is this a breaking change?"

[[additional_questions.choices]]
label = "No"
value = false

[[additional_questions.choices]]
label = "Yes"
value = true

[[additional_questions]]
name = "breakingDescription"
kind = "text"
message = "Describe the breaking change:"
when = "breaking"
required = true
error_message = "a breaking change description is required"
`
