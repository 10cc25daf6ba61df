package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// File/IO errors
	ErrFileAccess = errors.New("file access error")
	ErrReadFailed = errors.New("read failed")

	// Caselist/suite errors
	ErrParseFailed   = errors.New("parse failed")
	ErrSuiteConflict = errors.New("test suite conflict")
	ErrEmptySuite    = errors.New("test suite is empty")

	// Run errors
	ErrSpawnFailed = errors.New("spawn failed")
	ErrTimeout     = errors.New("run timeout")
	ErrCrash       = errors.New("test binary crashed")
	ErrFatalError  = errors.New("test binary reported fatal error")
	ErrNoTestsRun  = errors.New("no tests were run")
	ErrIncomplete  = errors.New("test run incomplete")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// General errors
	ErrInvalidArgument = errors.New("invalid argument")
)

// Wrap wraps an error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// New creates a new error with formatted message
func New(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As attempts to extract a specific error type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// MultiError collects errors from operations that can fail in several
// places without aborting at the first failure.
type MultiError struct {
	errors []error
}

// NewMultiError creates a new MultiError
func NewMultiError() *MultiError {
	return &MultiError{}
}

// Add adds an error to the MultiError
func (m *MultiError) Add(err error) {
	if err != nil {
		m.errors = append(m.errors, err)
	}
}

// HasErrors returns true if there are any errors
func (m *MultiError) HasErrors() bool {
	return len(m.errors) > 0
}

// Error implements the error interface
func (m *MultiError) Error() string {
	if len(m.errors) == 0 {
		return ""
	}
	if len(m.errors) == 1 {
		return m.errors[0].Error()
	}
	return fmt.Sprintf("multiple errors occurred: %v", m.errors)
}

// Errors returns all collected errors
func (m *MultiError) Errors() []error {
	return m.errors
}

// ErrorOrNil returns nil if no errors, otherwise returns the MultiError
func (m *MultiError) ErrorOrNil() error {
	if m.HasErrors() {
		return m
	}
	return nil
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.errors
}
