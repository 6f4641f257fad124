package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every error the client produces matches exactly one of these via errors.Is.
var (
	// ErrConnection is returned when the transport cannot be established or is lost.
	ErrConnection = errors.New("connection error")

	// ErrStream is returned when the inbound stream cannot be read or parsed.
	ErrStream = errors.New("stream error")

	// ErrMissingField is returned when a required attribute or child element is absent.
	ErrMissingField = errors.New("missing field")

	// ErrMalformedValue is returned when an attribute cannot be parsed to its expected type.
	ErrMalformedValue = errors.New("malformed value")

	// ErrPrecondition is returned when the protocol ordering or game rules are violated.
	ErrPrecondition = errors.New("precondition violation")

	// ErrSnapshotNotFound is returned when a store holds no snapshot for a room.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// ConnectionError wraps a transport failure.
type ConnectionError struct {
	Addr  string
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Addr, e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// MissingFieldError names the attribute or child an entity could not be built without.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMissingField, e.Entity, e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// MalformedValueError reports an attribute that is present but unparsable.
type MalformedValueError struct {
	Entity string
	Field  string
	Value  string
	Err    error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("%s: %s.%s=%q: %v", ErrMalformedValue, e.Entity, e.Field, e.Value, e.Err)
}

func (e *MalformedValueError) Unwrap() error { return e.Err }

func (e *MalformedValueError) Is(target error) bool { return target == ErrMalformedValue }

// PreconditionError reports a protocol ordering or rule violation.
type PreconditionError struct {
	Reason string
}

// NewPreconditionError formats a PreconditionError.
func NewPreconditionError(format string, args ...any) *PreconditionError {
	return &PreconditionError{Reason: fmt.Sprintf(format, args...)}
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPrecondition, e.Reason)
}

func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }
