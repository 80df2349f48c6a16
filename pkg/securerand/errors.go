// Package securerand produces random bytes and URL-safe tokens from the OS CSPRNG.
package securerand

import (
	"errors"
	"fmt"
)

// ErrEntropySource is the sentinel matched by every *EntropySourceError.
var ErrEntropySource = errors.New("securerand: entropy source failure")

// ErrInvalidLength is returned for negative byte counts.
var ErrInvalidLength = errors.New("securerand: byte count must not be negative")

// ErrTooLarge is returned for byte counts above MaxBytes.
var ErrTooLarge = errors.New("securerand: byte count exceeds MaxBytes")

// EntropySourceError reports that the source could not supply the full
// requested length. It is fatal for the operation that needed randomness.
type EntropySourceError struct {
	Requested int   // bytes asked for
	Read      int   // bytes obtained before the failure
	Err       error // underlying source error
}

// Error implements the error interface.
func (e *EntropySourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("securerand: entropy source read %d of %d bytes: %v", e.Read, e.Requested, e.Err)
	}
	return fmt.Sprintf("securerand: entropy source read %d of %d bytes", e.Read, e.Requested)
}

// Unwrap returns the underlying source error.
func (e *EntropySourceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrEntropySource.
func (e *EntropySourceError) Is(target error) bool {
	return target == ErrEntropySource
}

// IsEntropySourceError reports whether err is, or wraps, an entropy failure.
func IsEntropySourceError(err error) bool {
	var ese *EntropySourceError
	return errors.As(err, &ese)
}
