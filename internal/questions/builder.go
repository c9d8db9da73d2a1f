// Package questions builds the ordered prompt sequence of a commit session.
package questions

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/thomas-vilte/commit-template/internal/formatter"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/models"
)

const MaxSubjectLength = 50

type Builder struct {
	t *i18n.Translations
}

func NewBuilder(t *i18n.Translations) *Builder {
	return &Builder{t: t}
}

// Build returns the questions in prompt order: type, taskId, scope (only
// with scopes), subject, body, issues (only with an issue prefix), then the
// configured additional questions as they are. Additional questions reusing
// a built-in name are kept; their answer replaces the earlier one.
func (b *Builder) Build(cfg *models.EffectiveConfig, branch string) []models.Question {
	questions := make([]models.Question, 0, 6+len(cfg.AdditionalQuestions))

	questions = append(questions, models.Question{
		Kind:    models.KindChoice,
		Name:    formatter.KeyType,
		Message: b.msg("questions.type", nil),
		Choices: models.ChoicesFromTypes(cfg.Types),
	})

	questions = append(questions, b.taskIDQuestion(cfg, branch))

	if len(cfg.Scopes) > 0 {
		choices := make([]models.Choice, 0, len(cfg.Scopes)+1)
		choices = append(choices, models.Choice{Label: b.msg("questions.no_scope", nil), Value: ""})
		for _, scope := range cfg.Scopes {
			choices = append(choices, models.Choice{Label: scope, Value: scope})
		}
		questions = append(questions, models.Question{
			Kind:    models.KindChoice,
			Name:    formatter.KeyScope,
			Message: b.msg("questions.scope", nil),
			Choices: choices,
		})
	}

	questions = append(questions, models.Question{
		Kind:    models.KindText,
		Name:    formatter.KeySubject,
		Message: b.msg("questions.subject", nil),
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New(b.msg("questions.subject_required", nil))
			}
			if utf8.RuneCountInString(input) > MaxSubjectLength {
				return errors.New(b.msg("questions.subject_too_long", nil))
			}
			return nil
		},
	})

	questions = append(questions, models.Question{
		Kind:    models.KindText,
		Name:    formatter.KeyBody,
		Message: b.msg("questions.body", nil),
		Filter:  OptionalText,
	})

	if cfg.HasIssuePrefix() {
		questions = append(questions, models.Question{
			Kind:    models.KindText,
			Name:    formatter.KeyIssues,
			Message: b.msg("questions.issues", map[string]interface{}{"Prefix": cfg.IssuePrefix}),
			Filter:  IssueList,
		})
	}

	return append(questions, cfg.AdditionalQuestions...)
}

func (b *Builder) taskIDQuestion(cfg *models.EffectiveConfig, branch string) models.Question {
	q := models.Question{
		Kind:    models.KindText,
		Name:    formatter.KeyTaskID,
		Message: b.msg("questions.task_id", nil),
		Validate: func(input string) error {
			value := strings.TrimSpace(input)
			if value == "" {
				return errors.New(b.msg("questions.task_id_required", nil))
			}
			if !isDigits(value) {
				return errors.New(b.msg("questions.task_id_numeric", nil))
			}
			return nil
		},
	}

	if cfg.BranchFormat != nil {
		if ref, ok := formatter.FormatBranch(branch, cfg); ok && isDigits(ref) {
			q.Default = ref
		}
	}

	return q
}

func (b *Builder) msg(id string, data map[string]interface{}) string {
	return b.t.GetMessage(id, 0, data)
}

// OptionalText stores nothing for blank input and the trimmed text otherwise.
func OptionalText(input string) any {
	value := strings.TrimSpace(input)
	if value == "" {
		return nil
	}
	return value
}

// IssueList normalizes "A-1,A-2 , A-3" into "A-1, A-2, A-3". Blank input
// stores nothing.
func IssueList(input string) any {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
