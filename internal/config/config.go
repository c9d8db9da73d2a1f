package config

import (
	"fmt"

	"github.com/thomas-vilte/commit-template/internal/formatter"
	"github.com/thomas-vilte/commit-template/internal/models"
)

type (
	// UserConfig is the override schema of a project config file. Zero
	// values mean "not set" and keep the default.
	UserConfig struct {
		Types               []models.CommitType `toml:"types,omitempty" yaml:"types,omitempty" json:"types,omitempty" validate:"omitempty,dive"`
		Scopes              []string            `toml:"scopes,omitempty" yaml:"scopes,omitempty" json:"scopes,omitempty" validate:"omitempty,dive,required"`
		IssuePrefix         string              `toml:"issue_prefix,omitempty" yaml:"issue_prefix,omitempty" json:"issue_prefix,omitempty" validate:"omitempty,max=32"`
		AdditionalQuestions []QuestionConfig    `toml:"additional_questions,omitempty" yaml:"additional_questions,omitempty" json:"additional_questions,omitempty" validate:"omitempty,dive"`
		MessageFormat       string              `toml:"message_format,omitempty" yaml:"message_format,omitempty" json:"message_format,omitempty"`
		MessagePreset       string              `toml:"message_preset,omitempty" yaml:"message_preset,omitempty" json:"message_preset,omitempty" validate:"omitempty,oneof=default conventional"`
		BranchFormat        string              `toml:"branch_format,omitempty" yaml:"branch_format,omitempty" json:"branch_format,omitempty"`

		// Extra holds the file keys that are not part of the schema.
		Extra map[string]any `toml:"-" yaml:"-" json:"-"`

		// MessageFormatFunc and BranchFormatFunc override the declarative
		// settings when the config is built in code.
		MessageFormatFunc models.MessageFormatFunc `toml:"-" yaml:"-" json:"-"`
		BranchFormatFunc  models.BranchFormatFunc  `toml:"-" yaml:"-" json:"-"`
	}

	// QuestionConfig declares an additional prompt.
	QuestionConfig struct {
		Name         string         `toml:"name" yaml:"name" json:"name" validate:"required"`
		Kind         string         `toml:"kind,omitempty" yaml:"kind,omitempty" json:"kind,omitempty" validate:"omitempty,oneof=text choice confirm"`
		Message      string         `toml:"message" yaml:"message" json:"message" validate:"required"`
		Default      any            `toml:"default,omitempty" yaml:"default,omitempty" json:"default,omitempty"`
		Choices      []ChoiceConfig `toml:"choices,omitempty" yaml:"choices,omitempty" json:"choices,omitempty" validate:"omitempty,dive"`
		Required     bool           `toml:"required,omitempty" yaml:"required,omitempty" json:"required,omitempty"`
		Pattern      string         `toml:"pattern,omitempty" yaml:"pattern,omitempty" json:"pattern,omitempty"`
		ErrorMessage string         `toml:"error_message,omitempty" yaml:"error_message,omitempty" json:"error_message,omitempty"`
		MaxLength    int            `toml:"max_length,omitempty" yaml:"max_length,omitempty" json:"max_length,omitempty" validate:"gte=0"`
		Transform    string         `toml:"transform,omitempty" yaml:"transform,omitempty" json:"transform,omitempty" validate:"omitempty,oneof=trim lower upper list"`
		When         string         `toml:"when,omitempty" yaml:"when,omitempty" json:"when,omitempty"`
	}

	ChoiceConfig struct {
		Label string `toml:"label" yaml:"label" json:"label" validate:"required"`
		Value any    `toml:"value" yaml:"value" json:"value"`
	}
)

var defaultTypes = []models.CommitType{
	{Label: "✨ feat: new feature", Value: "feat"},
	{Label: "🐛 fix: bug fix", Value: "fix"},
	{Label: "📝 docs: documentation", Value: "docs"},
	{Label: "💄 style: code style", Value: "style"},
	{Label: "♻️ refactor: refactoring", Value: "refactor"},
	{Label: "⚡ perf: performance", Value: "perf"},
	{Label: "✅ test: tests", Value: "test"},
	{Label: "🔧 chore: tooling", Value: "chore"},
}

// Defaults returns a fresh copy of the built-in configuration.
func Defaults() *models.EffectiveConfig {
	types := make([]models.CommitType, len(defaultTypes))
	copy(types, defaultTypes)

	return &models.EffectiveConfig{
		Types:               types,
		Scopes:              []string{},
		AdditionalQuestions: []models.Question{},
		Extra:               map[string]any{},
	}
}

// Merge applies user overrides on top of the defaults. Every field is
// replaced as a whole; lists are never concatenated. An empty types list
// counts as not set.
func Merge(user *UserConfig) (*models.EffectiveConfig, error) {
	cfg := Defaults()
	if user == nil {
		return cfg, nil
	}

	if len(user.Types) > 0 {
		cfg.Types = append([]models.CommitType(nil), user.Types...)
	}
	if user.Scopes != nil {
		cfg.Scopes = append([]string{}, user.Scopes...)
	}
	if user.IssuePrefix != "" {
		cfg.IssuePrefix = user.IssuePrefix
	}
	if user.AdditionalQuestions != nil {
		questions, err := compileQuestions(user.AdditionalQuestions)
		if err != nil {
			return nil, err
		}
		cfg.AdditionalQuestions = questions
	}

	messageFormat, err := messageStrategy(user)
	if err != nil {
		return nil, err
	}
	cfg.MessageFormat = messageFormat

	branchFormat, err := branchStrategy(user)
	if err != nil {
		return nil, err
	}
	cfg.BranchFormat = branchFormat

	for k, v := range user.Extra {
		cfg.Extra[k] = v
	}

	return cfg, nil
}

// A code-supplied function wins over message_format, which wins over
// message_preset.
func messageStrategy(user *UserConfig) (models.MessageFormatFunc, error) {
	switch {
	case user.MessageFormatFunc != nil:
		return user.MessageFormatFunc, nil
	case user.MessageFormat != "":
		fn, err := formatter.Template("message_format", user.MessageFormat)
		if err != nil {
			return nil, fmt.Errorf("invalid message_format: %w", err)
		}
		return fn, nil
	default:
		return formatter.Preset(user.MessagePreset)
	}
}

func branchStrategy(user *UserConfig) (models.BranchFormatFunc, error) {
	switch {
	case user.BranchFormatFunc != nil:
		return user.BranchFormatFunc, nil
	case user.BranchFormat != "":
		return formatter.BranchPattern(user.BranchFormat)
	default:
		return nil, nil
	}
}
