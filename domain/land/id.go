package land

import (
	"github.com/google/uuid"

	"landlisting/domain/shared"
)

// ID uniquely identifies a Land aggregate.
// Generated once at creation, never reassigned, compared by its string value.
type ID struct {
	value string
}

// NewID generates a fresh identifier.
func NewID() ID {
	return ID{value: uuid.New().String()}
}

// ParseID validates a stored identifier. The value must be UUID-shaped.
func ParseID(raw string) (ID, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return ID{}, shared.NewValidationError("LandID", "value", "must be a valid UUID: "+raw)
	}
	return ID{value: raw}, nil
}

// Value returns the underlying string.
func (id ID) Value() string { return id.value }

// String implements fmt.Stringer.
func (id ID) String() string { return id.value }

// Equals compares by underlying value.
func (id ID) Equals(other ID) bool { return id.value == other.value }

// IsZero reports whether the ID was never assigned.
func (id ID) IsZero() bool { return id.value == "" }
