package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeGit           ErrorType = "GIT"
	TypeFormat        ErrorType = "FORMAT"
	TypePrompt        ErrorType = "PROMPT"
	TypeSetup         ErrorType = "SETUP"
	TypeLint          ErrorType = "LINT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the same predefined error, ignoring the
// underlying error and context attached with the With* helpers.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Git errors
var (
	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Initialize a git repository: git init")

	ErrGetBranch = NewAppError(TypeGit, "Failed to get current branch", nil).
			WithSuggestion("Make sure you are in a git repository: git status")

	ErrNoBranch = NewAppError(TypeGit, "No branch detected", nil).
			WithSuggestion("Create a branch first: git checkout -b <branch-name>")

	ErrGetStatus = NewAppError(TypeGit, "Failed to read working tree status", nil).
			WithSuggestion("Check the repository state: git status")

	ErrCreateCommit = NewAppError(TypeGit, "Failed to create commit", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")

	ErrGetRepoRoot = NewAppError(TypeGit, "Failed to get repository root", nil).
			WithSuggestion("Make sure you are inside a git repository")
)

// Configuration errors
var (
	ErrConfigLoad = NewAppError(TypeConfiguration, "Failed to load commit configuration", nil).
			WithSuggestion("Check the syntax of commit.config.toml or run: ct config")

	ErrConfigInvalid = NewAppError(TypeConfiguration, "Commit configuration is invalid", nil).
				WithSuggestion("Fix the reported fields in commit.config.toml")

	ErrConfigSave = NewAppError(TypeConfiguration, "Failed to save commit configuration", nil).
			WithSuggestion("Check you have write permissions in the project directory")
)

// Formatting errors
var (
	ErrFormatMessage = NewAppError(TypeFormat, "Failed to format commit message", nil).
				WithSuggestion("Review message_format in commit.config.toml")
)

// Prompt errors
var (
	ErrPromptAborted = NewAppError(TypePrompt, "Input closed before all questions were answered", nil)

	ErrPromptRead = NewAppError(TypePrompt, "Failed to read answer", nil)
)

// Setup errors
var (
	ErrHookWrite = NewAppError(TypeSetup, "Failed to install commit-msg hook", nil).
			WithSuggestion("Check permissions of .git/hooks")

	ErrRemove = NewAppError(TypeSetup, "Failed to remove commit template files", nil)
)

// Lint errors
var (
	ErrLintViolations = NewAppError(TypeLint, "Commit message does not follow the format", nil).
				WithSuggestion("Use the form: type(scope): subject")

	ErrLintRead = NewAppError(TypeLint, "Failed to read commit message", nil)
)
