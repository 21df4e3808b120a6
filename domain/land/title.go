package land

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"landlisting/domain/shared"
)

const (
	titleMinLength = 3
	titleMaxLength = 100
)

// Title is the listing headline.
// Invariants: 3-100 characters after trimming, at least one alphanumeric rune.
type Title struct {
	value string
}

// NewTitle validates and constructs a Title.
func NewTitle(raw string) (Title, error) {
	value := strings.TrimSpace(raw)

	length := utf8.RuneCountInString(value)
	if length < titleMinLength {
		return Title{}, shared.NewValidationError("LandTitle", "value", "must be at least 3 characters")
	}
	if length > titleMaxLength {
		return Title{}, shared.NewValidationError("LandTitle", "value", "must be at most 100 characters")
	}

	hasAlphanumeric := false
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasAlphanumeric = true
			break
		}
	}
	if !hasAlphanumeric {
		return Title{}, shared.NewValidationError("LandTitle", "value", "must contain at least one alphanumeric character")
	}

	return Title{value: value}, nil
}

// Value returns the title text.
func (t Title) Value() string { return t.value }

// String implements fmt.Stringer.
func (t Title) String() string { return t.value }

// Equals compares by value.
func (t Title) Equals(other Title) bool { return t.value == other.value }

// slugFolder strips diacritics so "Bávaro" slugs to "bavaro".
var slugFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives a URL-safe slug from the title: accents folded, lowercased,
// runs of non-alphanumerics collapsed to single dashes.
func (t Title) Slug() string {
	folded, _, err := transform.String(slugFolder, t.value)
	if err != nil {
		folded = t.value
	}

	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
