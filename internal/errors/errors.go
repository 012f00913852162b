package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Validation errors (VALIDATION-001 to VALIDATION-099)
	ErrCodeValidationFailed ErrorCode = "VALIDATION-001"
	ErrCodeUnderage         ErrorCode = "VALIDATION-002"

	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeInvalidCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthExpired        ErrorCode = "AUTH-002"
	ErrCodeSignInRequired     ErrorCode = "AUTH-003"
	ErrCodeAccountTypeDenied  ErrorCode = "AUTH-004"

	// Network errors (NET-001 to NET-099)
	ErrCodeNetwork        ErrorCode = "NET-001"
	ErrCodeServerRejected ErrorCode = "NET-002"

	// Credential store errors (STORE-001 to STORE-099)
	ErrCodeStoreRead  ErrorCode = "STORE-001"
	ErrCodeStoreWrite ErrorCode = "STORE-002"
)

// BarhopError represents an enhanced error with code, suggestions, and cause
type BarhopError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *BarhopError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *BarhopError) Unwrap() error {
	return e.Cause
}

// New creates a new BarhopError
func New(code ErrorCode, message string) *BarhopError {
	return &BarhopError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new BarhopError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *BarhopError {
	return &BarhopError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *BarhopError) WithSuggestion(suggestion string) *BarhopError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *BarhopError) WithSuggestions(suggestions ...string) *BarhopError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// CodeOf returns the error code of err, or an empty code when no
// BarhopError is found in its chain.
func CodeOf(err error) ErrorCode {
	var be *BarhopError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// Common error constructors for frequently used errors

// NewInvalidCredentialsError creates an error for a rejected login attempt
func NewInvalidCredentialsError() *BarhopError {
	return New(ErrCodeInvalidCredentials, "email or password is incorrect").
		WithSuggestion("Check your email address for typos").
		WithSuggestion("Use 'barhop auth register' if you don't have an account yet")
}

// NewAuthExpiredError creates an error for a token rejected by a protected endpoint
func NewAuthExpiredError() *BarhopError {
	return New(ErrCodeAuthExpired, "your session is no longer valid").
		WithSuggestion("Run 'barhop auth login' to sign in again")
}

// NewSignInRequiredError creates an error for an operation that needs a session
func NewSignInRequiredError() *BarhopError {
	return New(ErrCodeSignInRequired, "you are not signed in").
		WithSuggestion("Run 'barhop auth login' to sign in").
		WithSuggestion("Run 'barhop auth register' to create an account")
}

// NewAccountTypeDeniedError creates an error for a capability the account lacks
func NewAccountTypeDeniedError(required string) *BarhopError {
	return New(ErrCodeAccountTypeDenied, fmt.Sprintf("this action requires a %s account", required)).
		WithSuggestion("Register a business account to manage bars and events")
}

// NewNetworkError creates a transport-level failure error
func NewNetworkError(cause error) *BarhopError {
	return Wrap(ErrCodeNetwork, "could not reach the barhop service", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Retry the operation in a moment")
}

// NewStoreReadError creates a credential store read error
func NewStoreReadError(cause error) *BarhopError {
	return Wrap(ErrCodeStoreRead, "failed to read stored credentials", cause)
}

// NewStoreWriteError creates a credential store write error
func NewStoreWriteError(cause error) *BarhopError {
	return Wrap(ErrCodeStoreWrite, "failed to update stored credentials", cause).
		WithSuggestion("Check permissions on your barhop config directory").
		WithSuggestion("Retry the operation")
}

// NewValidationError creates a client-side validation error
func NewValidationError(details string) *BarhopError {
	return New(ErrCodeValidationFailed, fmt.Sprintf("invalid input: %s", details))
}

// NewUnderageError creates an error for a registration below the minimum age
func NewUnderageError() *BarhopError {
	return New(ErrCodeUnderage, "you must be at least 18 years old to register")
}
