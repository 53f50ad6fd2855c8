package feedback

import (
	"errors"
	"fmt"
)

// Kind classifies a CLI error for exit code mapping at the command boundary
type Kind int

// set of supported CLI error kinds
const (
	KindGeneral Kind = iota
	KindConfig
	KindProfileNotFound
	KindAuth
	KindTransient
	KindSerialization
)

// set of supported CLI exit codes
const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
	ExitCodeAuth    = 2
)

// ErrSuggester provides a list of suggestions that will display to the user when an error occurs
type ErrSuggester interface {
	Suggestions() []string
}

// NewErr returns a new CLI error of the provided kind
func NewErr(kind Kind, cause error, suggestions ...string) error {
	return cliErr{kind: kind, cause: cause, suggestions: suggestions}
}

// NewConfigErr returns a new CLI error for an unreadable or unwritable config
func NewConfigErr(cause error) error {
	return NewErr(KindConfig, fmt.Errorf("failed to access CLI config: %w", cause))
}

// NewProfileNotFoundErr returns a new CLI error for an unknown profile name
func NewProfileNotFoundErr(name string) error {
	return NewErr(
		KindProfileNotFound,
		fmt.Errorf("profile %q not found", name),
		fmt.Sprintf("run 'strava login --profile %s' to create it", name),
	)
}

// NewAuthErr returns a new CLI error that signals the user must (re-)authenticate
func NewAuthErr(cause error, suggestions ...string) error {
	return NewErr(KindAuth, cause, suggestions...)
}

// NewTransientErr returns a new CLI error for a network or timeout failure safe to retry
func NewTransientErr(cause error) error {
	return NewErr(KindTransient, cause)
}

// NewSerializationErr returns a new CLI error for a value that cannot be rendered
func NewSerializationErr(cause error) error {
	return NewErr(KindSerialization, cause)
}

type cliErr struct {
	kind        Kind
	cause       error
	suggestions []string
}

func (err cliErr) Error() string {
	return err.cause.Error()
}

func (err cliErr) Unwrap() error {
	return err.cause
}

func (err cliErr) Kind() Kind {
	return err.kind
}

func (err cliErr) Suggestions() []string {
	return err.suggestions
}

// KindOf returns the kind of the provided error,
// defaulting to KindGeneral for errors raised outside this package
func KindOf(err error) Kind {
	var cli cliErr
	if errors.As(err, &cli) {
		return cli.kind
	}
	return KindGeneral
}

// IsAuthErr determines whether the provided error requires the user to re-authenticate
func IsAuthErr(err error) bool {
	return KindOf(err) == KindAuth
}

// IsTransientErr determines whether the provided error is safe to retry
func IsTransientErr(err error) bool {
	return KindOf(err) == KindTransient
}

// ExitCode maps the provided error to the CLI process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	if IsAuthErr(err) {
		return ExitCodeAuth
	}
	return ExitCodeError
}

// Suggestions collects any suggestions attached to the provided error chain
func Suggestions(err error) []string {
	var out []string
	for err != nil {
		if s, ok := err.(ErrSuggester); ok {
			out = append(out, s.Suggestions()...)
		}
		err = errors.Unwrap(err)
	}
	return out
}
