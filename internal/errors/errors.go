package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeGit           ErrorType = "GIT"
	TypeEmptyResult   ErrorType = "EMPTY_RESULT"
	TypeOutput        ErrorType = "OUTPUT"
	TypeInternal      ErrorType = "INTERNAL"
)

// Process exit codes
const (
	ExitSuccess          = 0
	ExitGitFailure       = 1
	ExitNoCommits        = 2
	ExitInvalidArguments = 3
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

// Is matches another AppError with the same type and message, so copies made
// by WithError or WithContext still match their sentinel.
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

// ExitCodeOf maps an error to the process exit code, defaulting to 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return ExitGitFailure
	}
	switch appErr.Type {
	case TypeEmptyResult:
		return ExitNoCommits
	case TypeConfiguration:
		return ExitInvalidArguments
	default:
		return ExitGitFailure
	}
}

// Git errors
var (
	ErrGitLog = NewAppError(TypeGit, "Failed to read git log", nil).
			WithSuggestion("Make sure you are inside a git repository and the branch exists: git log")

	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Run the command from a repository or pass --repo <path>")
)

// Result errors
var (
	ErrNoCommits = NewAppError(TypeEmptyResult, "No commits found matching the criteria", nil).
		WithSuggestion("Widen the range with --since/--until or check --branch")
)

// Configuration errors
var (
	ErrInvalidFormat = NewAppError(TypeConfiguration, "Unsupported output format", nil).
				WithSuggestion("Use one of: markdown, simple, json")

	ErrInvalidBackend = NewAppError(TypeConfiguration, "Unsupported git backend", nil).
				WithSuggestion("Use one of: cli, gogit")

	ErrInvalidDate = NewAppError(TypeConfiguration, "Date filter must be YYYY-MM-DD with the gogit backend", nil).
			WithSuggestion("Use --backend cli for relative dates like \"1 week ago\"")

	ErrInvalidConfig = NewAppError(TypeConfiguration, "Configuration is not valid", nil).
				WithSuggestion("Inspect it with: mate-changelog config show")

	ErrInvalidArguments = NewAppError(TypeConfiguration, "Invalid command line arguments", nil).
				WithSuggestion("See the available flags with: mate-changelog --help")

	ErrConfigExists = NewAppError(TypeConfiguration, "Configuration file already exists", nil).
			WithSuggestion("Overwrite it with: mate-changelog config init --force")

	ErrConfigLoad = NewAppError(TypeConfiguration, "Failed to load configuration file", nil).
			WithSuggestion("Recreate it with: mate-changelog config init --force")
)

// Output errors
var (
	ErrWriteOutput = NewAppError(TypeOutput, "Failed to write changelog", nil).
		WithSuggestion("Check the output path exists and is writable")
)
