/*
Package errors defines application-level error codes and the translation from
domain errors. HTTP status mapping lives in the API layer; this package knows
nothing about transports.
*/
package errors

import (
	"errors"
	"fmt"

	"landlisting/domain/land"
	"landlisting/domain/shared"
)

// ErrorCode is a stable machine-readable application error code.
type ErrorCode string

const (
	// Generic codes
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	CodeForbidden      ErrorCode = "FORBIDDEN"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"

	// Business codes
	CodeLandNotFound     ErrorCode = "LAND_NOT_FOUND"
	CodeBusinessRule     ErrorCode = "BUSINESS_RULE_VIOLATION"
	CodeLandNotDeletable ErrorCode = "LAND_NOT_DELETABLE"
)

// AppError is the application-layer error envelope.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	// RuleCode carries the domain business-rule code when applicable,
	// e.g. PUBLISHED_LAND_PRICE_CHANGE.
	RuleCode string `json:"rule_code,omitempty"`
	Err      error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap creates an AppError preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Common constructors

func BadRequest(message string) *AppError      { return New(CodeBadRequest, message) }
func NotFound(message string) *AppError        { return New(CodeNotFound, message) }
func Internal(message string) *AppError        { return New(CodeInternal, message) }
func Forbidden(message string) *AppError       { return New(CodeForbidden, message) }
func Conflict(message string) *AppError        { return New(CodeConflict, message) }
func TooManyRequests(message string) *AppError { return New(CodeTooManyRequest, message) }
func Validation(message string) *AppError      { return New(CodeValidation, message) }

// Is reports whether the error carries the given application code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FromDomainError translates domain errors into application errors.
// ValidationError → VALIDATION_ERROR; BusinessRuleError → BUSINESS_RULE_VIOLATION
// with the domain rule code preserved, except LAND_NOT_DELETABLE which keeps its
// own application code; not-found sentinels → LAND_NOT_FOUND. Anything
// unrecognized wraps as INTERNAL_ERROR.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		return &AppError{
			Code:    CodeValidation,
			Message: validationErr.Error(),
			Err:     err,
		}
	}

	var ruleErr *shared.BusinessRuleError
	if errors.As(err, &ruleErr) {
		code := CodeBusinessRule
		if ruleErr.Code == land.CodeLandNotDeletable {
			code = CodeLandNotDeletable
		}
		return &AppError{
			Code:     code,
			Message:  ruleErr.Message,
			RuleCode: ruleErr.Code,
			Err:      err,
		}
	}

	if errors.Is(err, shared.ErrNotFound) {
		return &AppError{Code: CodeLandNotFound, Message: err.Error(), Err: err}
	}
	if errors.Is(err, shared.ErrConflict) {
		return &AppError{Code: CodeConflict, Message: err.Error(), Err: err}
	}

	return Wrap(err, CodeInternal, "internal server error")
}
