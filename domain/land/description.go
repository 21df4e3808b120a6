package land

import (
	"strings"
	"unicode/utf8"

	"landlisting/domain/shared"
)

const (
	descriptionMinLength = 10
	descriptionMaxLength = 2000
)

// Description is the listing body text.
// Invariants: 10-2000 characters after trimming.
type Description struct {
	value string
}

// NewDescription validates and constructs a Description.
func NewDescription(raw string) (Description, error) {
	value := strings.TrimSpace(raw)

	length := utf8.RuneCountInString(value)
	if length < descriptionMinLength {
		return Description{}, shared.NewValidationError("LandDescription", "value", "must be at least 10 characters")
	}
	if length > descriptionMaxLength {
		return Description{}, shared.NewValidationError("LandDescription", "value", "must be at most 2000 characters")
	}

	return Description{value: value}, nil
}

// Value returns the description text.
func (d Description) Value() string { return d.value }

// String implements fmt.Stringer.
func (d Description) String() string { return d.value }

// Equals compares by value.
func (d Description) Equals(other Description) bool { return d.value == other.value }

// WordCount counts whitespace-separated words.
func (d Description) WordCount() int {
	return len(strings.Fields(d.value))
}

// Excerpt truncates to at most maxChars runes, backtracking to the last space
// so words are not cut mid-way, then appends an ellipsis. When no space exists
// inside the window the text is hard-truncated.
func (d Description) Excerpt(maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	runes := []rune(d.value)
	if len(runes) <= maxChars {
		return d.value
	}

	cut := string(runes[:maxChars])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
