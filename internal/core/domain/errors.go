// Package domain defines the core value types of tokgen.
package domain

import (
	"errors"
	"fmt"

	"github.com/yndnr/tokgen-go/pkg/securerand"
)

// DomainError is an error with a stable code.
//
// Message is safe to show to end users; Details and Cause carry internal
// information meant for logs only.
type DomainError struct {
	Code    string // Error code (e.g., "TG-RAND-5000")
	Message string // Generic, user-facing message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Public returns the message without details or cause.
func (e *DomainError) Public() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches another DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return code == "" || de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Randomness errors.
var (
	// ErrEntropySource indicates the OS entropy source could not supply the
	// requested bytes. The operation that needed randomness must be aborted.
	ErrEntropySource = NewDomainError("TG-RAND-5000", "secure random generation failed")

	// ErrSelfTest indicates a generated key failed its cipher round trip.
	ErrSelfTest = NewDomainError("TG-RAND-5001", "key self-test failed")
)

// Key and token errors.
var (
	// ErrUnknownAlgorithm indicates an unsupported key algorithm.
	ErrUnknownAlgorithm = NewDomainError("TG-KEY-4000", "unknown key algorithm")

	// ErrUnknownTokenKind indicates an unsupported token kind.
	ErrUnknownTokenKind = NewDomainError("TG-TOKN-4000", "unknown token kind")

	// ErrTokenMalformed indicates the token format is invalid.
	ErrTokenMalformed = NewDomainError("TG-TOKN-4001", "malformed token")

	// ErrTokenMismatch indicates a token does not match the given hash.
	ErrTokenMismatch = NewDomainError("TG-TOKN-4010", "token does not match hash")
)

// Argument errors.
var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("TG-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("TG-ARG-1002", "missing required argument")
)

// ErrInternal indicates an unexpected failure.
var ErrInternal = NewDomainError("TG-SYS-5000", "internal error")

// FromError maps errors returned by securerand onto domain errors. Domain
// errors pass through unchanged and nil stays nil.
func FromError(err error) error {
	if err == nil {
		return nil
	}

	var de *DomainError
	if errors.As(err, &de) {
		return err
	}

	switch {
	case securerand.IsEntropySourceError(err):
		return ErrEntropySource.WithCause(err)
	case errors.Is(err, securerand.ErrInvalidLength):
		return ErrInvalidArgument.WithDetails("byte count must not be negative").WithCause(err)
	case errors.Is(err, securerand.ErrTooLarge):
		return ErrInvalidArgument.WithDetails(fmt.Sprintf("byte count must not exceed %d", securerand.MaxBytes)).WithCause(err)
	default:
		return ErrInternal.WithCause(err)
	}
}
