package models

// QuestionKind tags the variant of a Question.
type QuestionKind string

const (
	KindText    QuestionKind = "text"
	KindChoice  QuestionKind = "choice"
	KindConfirm QuestionKind = "confirm"
)

type (
	// CommitType is one selectable commit type, e.g. {Label: "feat: new feature", Value: "feat"}.
	CommitType struct {
		Label string `toml:"label" yaml:"label" json:"label" validate:"required"`
		Value string `toml:"value" yaml:"value" json:"value" validate:"required"`
	}

	// Choice is one option of a choice question. Value is a string or a bool.
	Choice struct {
		Label string
		Value any
	}

	// Question is a declarative description of one prompt.
	//
	// Validate receives the raw input and returns a non-nil error whose
	// message is shown to the user before asking again. Filter maps the raw
	// input to the stored value; a nil result leaves the answer absent.
	// When, if set, is evaluated against the answers collected so far and
	// the question is skipped when it returns false.
	Question struct {
		Kind     QuestionKind
		Name     string
		Message  string
		Default  any
		Choices  []Choice
		Validate func(input string) error
		Filter   func(input string) any
		When     func(answers Answers) bool
	}
)

// ChoicesFromTypes converts commit types into choice options, keeping order.
func ChoicesFromTypes(types []CommitType) []Choice {
	choices := make([]Choice, 0, len(types))
	for _, t := range types {
		choices = append(choices, Choice{Label: t.Label, Value: t.Value})
	}
	return choices
}

// Names returns the answer keys of the questions in order.
func Names(questions []Question) []string {
	names := make([]string, 0, len(questions))
	for _, q := range questions {
		names = append(names, q.Name)
	}
	return names
}
