/*
Package shared holds the error model and contracts common to all subdomains.

Two error kinds cover every domain failure:
  - ValidationError: a single raw input violates a value object's own invariants
  - BusinessRuleError: individually valid fields conflict with a domain policy

Both capture the call stack at construction and format it lazily, so the API
layer can log the point of failure without the domain layer knowing about
logging at all.
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ============================================================================
// Sentinel errors
// Matched with errors.Is(); they classify failures without carrying context.
// ============================================================================

var (
	// ErrValidation marks a value object factory rejecting raw input.
	ErrValidation = errors.New("validation failed")

	// ErrBusinessRule marks a cross-field or state-dependent rule violation.
	ErrBusinessRule = errors.New("business rule violated")

	// ErrNotFound marks a missing aggregate.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a persistence-level conflict (duplicate id, etc).
	ErrConflict = errors.New("conflict")
)

// ============================================================================
// ValidationError
// ============================================================================

// ValidationError is raised by value object factories when raw input violates
// that object's own invariants. Always caller-correctable.
type ValidationError struct {
	Object  string // value object name, e.g. "LandPrice"
	Field   string // offending field, optional
	Message string

	stack []uintptr
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Object, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Object, e.Message)
}

// Unwrap supports errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Stack formats the captured stack on demand.
func (e *ValidationError) Stack() []string { return FormatStack(e.stack) }

// NewValidationError creates a validation error with the stack captured at the
// calling factory.
func NewValidationError(object, field, message string) error {
	return &ValidationError{
		Object:  object,
		Field:   field,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// ============================================================================
// BusinessRuleError
// ============================================================================

// BusinessRuleError is raised by aggregate methods or domain services when a
// combination of otherwise-valid fields, or the entity's current state,
// conflicts with a domain policy. Code is machine-readable and stable.
type BusinessRuleError struct {
	Code    string
	Message string

	stack []uintptr
}

func (e *BusinessRuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap supports errors.Is(err, ErrBusinessRule).
func (e *BusinessRuleError) Unwrap() error { return ErrBusinessRule }

// Stack formats the captured stack on demand.
func (e *BusinessRuleError) Stack() []string { return FormatStack(e.stack) }

// NewBusinessRuleError creates a business rule violation carrying a stable
// machine code plus a human-readable message.
func NewBusinessRuleError(code, message string) error {
	return &BusinessRuleError{
		Code:    code,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewNotFoundError creates a "not found" error for the named entity.
func NewNotFoundError(entity, id string) error {
	return &notFoundError{
		entity:  entity,
		message: entity + " not found: " + id,
		stack:   CaptureStack(3),
	}
}

type notFoundError struct {
	entity  string
	message string
	stack   []uintptr
}

func (e *notFoundError) Error() string   { return e.message }
func (e *notFoundError) Unwrap() error   { return ErrNotFound }
func (e *notFoundError) Stack() []string { return FormatStack(e.stack) }

// ============================================================================
// Stack capture helpers
// ============================================================================

// CaptureStack captures the current call stack.
// skip is the number of frames to drop (Callers, CaptureStack, constructor).
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders captured frames, filtering runtime internals.
// At most 10 frames are returned.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// Stacker is implemented by errors that carry their point of origin.
// The API layer uses it to log stacks without unwrapping concrete types.
type Stacker interface {
	Stack() []string
}
