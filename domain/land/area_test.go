package land

import (
	"errors"
	"math"
	"testing"

	"landlisting/domain/shared"
)

func TestNewAreaBounds(t *testing.T) {
	if _, err := NewArea(1); err != nil {
		t.Errorf("1 m² should pass: %v", err)
	}
	if _, err := NewArea(100_000_000); err != nil {
		t.Errorf("100,000,000 m² should pass: %v", err)
	}

	for _, invalid := range []float64{0, -1, 100_000_001, 2500.5, math.NaN(), math.Inf(1)} {
		if _, err := NewArea(invalid); err == nil {
			t.Errorf("NewArea(%v) should fail", invalid)
		}
	}
}

func TestNewAreaZeroIsValidationError(t *testing.T) {
	_, err := NewArea(0)
	if err == nil {
		t.Fatal("expected error for zero area")
	}
	if !errors.Is(err, shared.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	var validationErr *shared.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *shared.ValidationError, got %T", err)
	}
	if validationErr.Object != "LandArea" {
		t.Errorf("Object = %q, want LandArea", validationErr.Object)
	}
}

func TestAreaConversions(t *testing.T) {
	area, err := NewArea(2500)
	if err != nil {
		t.Fatalf("NewArea failed: %v", err)
	}

	if got := area.Hectares(); got != 0.25 {
		t.Errorf("Hectares() = %v, want 0.25", got)
	}
	// 2500 / 629 ≈ 3.9746
	if got := area.Tareas(); math.Abs(got-3.97) > 0.01 {
		t.Errorf("Tareas() = %v, want ≈ 3.97", got)
	}
	if got := area.Acres(); math.Abs(got-0.6177) > 0.001 {
		t.Errorf("Acres() = %v, want ≈ 0.6177", got)
	}
}

func TestAreaFormat(t *testing.T) {
	area, err := NewArea(2500)
	if err != nil {
		t.Fatalf("NewArea failed: %v", err)
	}
	if got := area.Format(); got != "2,500 m²" {
		t.Errorf("Format() = %q, want %q", got, "2,500 m²")
	}
}
