package land

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"landlisting/domain/shared"
)

// Conversion divisors from square meters.
const (
	SquareMetersPerHectare = 10000
	SquareMetersPerTarea   = 629 // Dominican Republic land unit
	SquareMetersPerAcre    = 4047
)

const (
	areaMinSquareMeters = 1
	areaMaxSquareMeters = 100_000_000
)

// Area is a land surface in whole square meters.
// Invariants: integral, within [1, 100,000,000]. Fractional meters are
// rejected rather than rounded.
type Area struct {
	squareMeters int64
}

// NewArea validates and constructs an Area from a raw numeric input.
func NewArea(squareMeters float64) (Area, error) {
	if math.IsNaN(squareMeters) || math.IsInf(squareMeters, 0) {
		return Area{}, shared.NewValidationError("LandArea", "squareMeters", "must be a finite number")
	}
	if squareMeters != math.Trunc(squareMeters) {
		return Area{}, shared.NewValidationError("LandArea", "squareMeters", "must be a whole number of square meters")
	}

	value := int64(squareMeters)
	if value < areaMinSquareMeters {
		return Area{}, shared.NewValidationError("LandArea", "squareMeters", "must be at least 1 square meter")
	}
	if value > areaMaxSquareMeters {
		return Area{}, shared.NewValidationError("LandArea", "squareMeters", "must be at most 100,000,000 square meters")
	}

	return Area{squareMeters: value}, nil
}

// Value returns the area in square meters.
func (a Area) Value() int64 { return a.squareMeters }

// Hectares converts to hectares.
func (a Area) Hectares() float64 {
	return float64(a.squareMeters) / SquareMetersPerHectare
}

// Tareas converts to tareas (629 m² each).
func (a Area) Tareas() float64 {
	return float64(a.squareMeters) / SquareMetersPerTarea
}

// Acres converts to acres.
func (a Area) Acres() float64 {
	return float64(a.squareMeters) / SquareMetersPerAcre
}

// Equals compares by value.
func (a Area) Equals(other Area) bool { return a.squareMeters == other.squareMeters }

// IsZero reports whether the area was never constructed.
func (a Area) IsZero() bool { return a.squareMeters == 0 }

var areaPrinter = message.NewPrinter(language.English)

// Format renders the area with thousands separators, e.g. "2,500 m²".
func (a Area) Format() string {
	return areaPrinter.Sprintf("%d m²", a.squareMeters)
}
