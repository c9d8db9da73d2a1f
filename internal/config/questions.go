package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/thomas-vilte/commit-template/internal/models"
)

func compileQuestions(decls []QuestionConfig) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(decls))
	for i, decl := range decls {
		q, err := compileQuestion(decl)
		if err != nil {
			return nil, fmt.Errorf("additional_questions[%d] (%s): %w", i, decl.Name, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func compileQuestion(decl QuestionConfig) (models.Question, error) {
	q := models.Question{
		Kind:    models.QuestionKind(decl.Kind),
		Name:    decl.Name,
		Message: decl.Message,
		Default: decl.Default,
		When:    whenAnswered(decl.When),
	}
	if q.Kind == "" {
		q.Kind = models.KindText
	}

	switch q.Kind {
	case models.KindChoice:
		if len(decl.Choices) == 0 {
			return models.Question{}, errors.New("choice question without choices")
		}
		for _, c := range decl.Choices {
			q.Choices = append(q.Choices, models.Choice{Label: c.Label, Value: normalizeValue(c.Value)})
		}
	case models.KindConfirm:
		if decl.Default != nil {
			b, ok := decl.Default.(bool)
			if !ok {
				return models.Question{}, fmt.Errorf("confirm default must be a boolean, got %T", decl.Default)
			}
			q.Default = b
		}
	case models.KindText:
		if decl.Default != nil {
			q.Default = fmt.Sprint(decl.Default)
		}
		validate, err := textValidator(decl)
		if err != nil {
			return models.Question{}, err
		}
		q.Validate = validate
		q.Filter = textFilter(decl.Transform)
	}

	return q, nil
}

func textValidator(decl QuestionConfig) (func(string) error, error) {
	var pattern *regexp.Regexp
	if decl.Pattern != "" {
		re, err := regexp.Compile(decl.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", decl.Pattern, err)
		}
		pattern = re
	}

	if !decl.Required && pattern == nil && decl.MaxLength == 0 {
		return nil, nil
	}

	fail := func(msg string) error {
		if decl.ErrorMessage != "" {
			return errors.New(decl.ErrorMessage)
		}
		return errors.New(msg)
	}

	return func(input string) error {
		value := strings.TrimSpace(input)
		if value == "" {
			if decl.Required {
				return fail(decl.Name + " required")
			}
			return nil
		}
		if decl.MaxLength > 0 && utf8.RuneCountInString(input) > decl.MaxLength {
			return fail(decl.Name + " too long")
		}
		if pattern != nil && !pattern.MatchString(value) {
			return fail(decl.Name + " has an invalid format")
		}
		return nil
	}, nil
}

// textFilter stores blank input as absent and applies the transform to the
// rest.
func textFilter(transform string) func(string) any {
	return func(input string) any {
		if strings.TrimSpace(input) == "" {
			return nil
		}
		switch transform {
		case "trim":
			return strings.TrimSpace(input)
		case "lower":
			return strings.ToLower(strings.TrimSpace(input))
		case "upper":
			return strings.ToUpper(strings.TrimSpace(input))
		case "list":
			parts := strings.Split(input, ",")
			for i, p := range parts {
				parts[i] = strings.TrimSpace(p)
			}
			return strings.Join(parts, ", ")
		default:
			return input
		}
	}
}

// whenAnswered asks the question only when the named answer is truthy, or
// falsy for a "!name" condition.
func whenAnswered(cond string) func(models.Answers) bool {
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return nil
	}
	if name, negated := strings.CutPrefix(cond, "!"); negated {
		return func(a models.Answers) bool { return !a.Bool(name) }
	}
	return func(a models.Answers) bool { return a.Bool(cond) }
}

// Choice values decoded from TOML or JSON arrive as int64 or float64; the
// prompter stores them as given, so numbers are kept as their text form.
func normalizeValue(v any) any {
	switch v := v.(type) {
	case nil:
		return ""
	case string, bool:
		return v
	default:
		return fmt.Sprint(v)
	}
}
