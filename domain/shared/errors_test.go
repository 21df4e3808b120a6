package shared

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("LandPrice", "amount", "must be at least 1000")

	if !errors.Is(err, ErrValidation) {
		t.Error("validation errors must match ErrValidation")
	}
	if errors.Is(err, ErrBusinessRule) {
		t.Error("validation errors must not match ErrBusinessRule")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatal("expected a *ValidationError")
	}
	if vErr.Object != "LandPrice" || vErr.Field != "amount" {
		t.Errorf("got %q.%q", vErr.Object, vErr.Field)
	}
	if got := err.Error(); got != "LandPrice.amount: must be at least 1000" {
		t.Errorf("Error() = %q", got)
	}

	// Without a field the message drops the dot segment.
	bare := NewValidationError("LandArea", "", "must be positive")
	if got := bare.Error(); got != "LandArea: must be positive" {
		t.Errorf("Error() = %q", got)
	}
}

func TestBusinessRuleError(t *testing.T) {
	err := NewBusinessRuleError("INVALID_STATUS_TRANSITION", "cannot move from sold to reserved")

	if !errors.Is(err, ErrBusinessRule) {
		t.Error("business rule errors must match ErrBusinessRule")
	}

	var ruleErr *BusinessRuleError
	if !errors.As(err, &ruleErr) {
		t.Fatal("expected a *BusinessRuleError")
	}
	if ruleErr.Code != "INVALID_STATUS_TRANSITION" {
		t.Errorf("Code = %q", ruleErr.Code)
	}
	if got := err.Error(); got != "INVALID_STATUS_TRANSITION: cannot move from sold to reserved" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("land", "abc-123")

	if !errors.Is(err, ErrNotFound) {
		t.Error("not-found errors must match ErrNotFound")
	}
	if got := err.Error(); got != "land not found: abc-123" {
		t.Errorf("Error() = %q", got)
	}

	// Wrapping preserves the sentinel.
	wrapped := fmt.Errorf("loading listing: %w", err)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped not-found errors must still match ErrNotFound")
	}
}

func TestErrorsCarryStacks(t *testing.T) {
	for _, err := range []error{
		NewValidationError("LandTitle", "", "too short"),
		NewBusinessRuleError("SOME_RULE", "violated"),
		NewNotFoundError("land", "missing"),
	} {
		stacker, ok := err.(Stacker)
		if !ok {
			t.Fatalf("%T does not implement Stacker", err)
		}
		stack := stacker.Stack()
		if len(stack) == 0 {
			t.Errorf("%T captured no stack", err)
		}
		for _, frame := range stack {
			if frame == "" {
				t.Errorf("%T produced an empty stack frame", err)
			}
		}
	}
}

func TestFormatStackEmpty(t *testing.T) {
	if FormatStack(nil) != nil {
		t.Error("FormatStack(nil) should be nil")
	}
}
