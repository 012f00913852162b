package exitcode

import (
	"os"

	"github.com/barhopapp/barhop/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ValidationError indicates client-side input validation failed
	ValidationError = 3

	// AuthError indicates an authentication or authorization failure
	AuthError = 4

	// NetworkError indicates a network connectivity issue
	NetworkError = 5

	// StorageError indicates a credential store read or write failure
	StorageError = 6

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch errors.CodeOf(err) {
	case errors.ErrCodeValidationFailed, errors.ErrCodeUnderage:
		return ValidationError
	case errors.ErrCodeInvalidCredentials, errors.ErrCodeAuthExpired,
		errors.ErrCodeSignInRequired, errors.ErrCodeAccountTypeDenied:
		return AuthError
	case errors.ErrCodeNetwork, errors.ErrCodeServerRejected:
		return NetworkError
	case errors.ErrCodeStoreRead, errors.ErrCodeStoreWrite:
		return StorageError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case ValidationError:
		return "Input validation failed"
	case AuthError:
		return "Authentication or authorization error"
	case NetworkError:
		return "Network error"
	case StorageError:
		return "Credential storage error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
