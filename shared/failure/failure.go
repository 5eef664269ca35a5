package failure

import (
	"errors"
)

// Process exit statuses. ExitDataErr and ExitUnavailable follow sysexits(3).
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 1
	ExitDataErr     = 65
	ExitUnavailable = 69
)

// Failure is a wrapper for error messages and the process exit code they map to.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// Usage returns a new Failure for a bad or missing command-line argument.
func Usage(msg string) error {
	return &Failure{
		Code:    ExitUsage,
		Message: msg,
	}
}

// InvalidInput returns a new Failure for malformed user input, keeping err as the cause.
func InvalidInput(err error) error {
	if err != nil {
		return &Failure{
			Code:    ExitDataErr,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// InvalidInputFromString returns a new Failure for malformed user input with message set from string.
func InvalidInputFromString(msg string) error {
	return &Failure{
		Code:    ExitDataErr,
		Message: msg,
	}
}

// Unavailable returns a new Failure for an unreachable store, keeping err as the cause.
func Unavailable(err error) error {
	if err != nil {
		return &Failure{
			Code:    ExitUnavailable,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// Internal returns a new Failure with the generic failure code and message derived from an error interface.
func Internal(err error) error {
	if err != nil {
		return &Failure{
			Code:    ExitFailure,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// GetCode returns the exit code of an error interface.
func GetCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return ExitFailure
}
