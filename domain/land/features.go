package land

import (
	"strings"
	"unicode/utf8"

	"landlisting/domain/shared"
)

const (
	featuresMaxCount = 20
	featureMaxLength = 50
)

// FeatureCategory groups features by keyword matching.
type FeatureCategory string

const (
	CategoryUtility FeatureCategory = "utility"
	CategoryAccess  FeatureCategory = "access"
	CategoryView    FeatureCategory = "view"
	CategoryTerrain FeatureCategory = "terrain"
)

// categoryKeywords drives Filter. Matching is case-insensitive substring.
var categoryKeywords = map[FeatureCategory][]string{
	CategoryUtility: {"electricity", "water", "sewer", "internet", "utilities", "irrigation"},
	CategoryAccess:  {"access", "road", "highway", "entrance", "gate"},
	CategoryView:    {"view", "ocean", "mountain", "panoramic", "sunset"},
	CategoryTerrain: {"flat", "slope", "hill", "soil", "terrain", "cleared"},
}

// Features is an ordered set of free-text feature strings.
// Invariants: at most 20 items, each 1-50 characters. Comparison and
// de-duplication are case-insensitive; the stored casing is whatever was
// added first. Mutators return new instances.
type Features struct {
	items []string
}

// NewFeatures validates and constructs a feature set, de-duplicating
// case-insensitively while preserving first-added order and casing.
func NewFeatures(raw []string) (Features, error) {
	f := Features{}
	for _, item := range raw {
		next, err := f.Add(item)
		if err != nil {
			return Features{}, err
		}
		f = next
	}
	return f, nil
}

// Add returns a new collection including the feature. Adding an existing
// feature (case-insensitive) is a no-op returning an equal collection.
func (f Features) Add(feature string) (Features, error) {
	value := strings.TrimSpace(feature)
	if value == "" {
		return Features{}, shared.NewValidationError("LandFeatures", "feature", "feature must not be empty")
	}
	if utf8.RuneCountInString(value) > featureMaxLength {
		return Features{}, shared.NewValidationError("LandFeatures", "feature", "feature must be at most 50 characters")
	}

	if f.Contains(value) {
		return f.clone(), nil
	}
	if len(f.items) >= featuresMaxCount {
		return Features{}, shared.NewValidationError("LandFeatures", "feature", "at most 20 features are allowed")
	}

	next := f.clone()
	next.items = append(next.items, value)
	return next, nil
}

// Remove returns a new collection without the feature (case-insensitive).
// Removing an absent feature is a no-op.
func (f Features) Remove(feature string) Features {
	target := strings.ToLower(strings.TrimSpace(feature))
	next := Features{items: make([]string, 0, len(f.items))}
	for _, item := range f.items {
		if strings.ToLower(item) != target {
			next.items = append(next.items, item)
		}
	}
	return next
}

// Contains reports case-insensitive membership.
func (f Features) Contains(feature string) bool {
	target := strings.ToLower(strings.TrimSpace(feature))
	for _, item := range f.items {
		if strings.ToLower(item) == target {
			return true
		}
	}
	return false
}

// Items returns a copy of the features in insertion order.
func (f Features) Items() []string {
	out := make([]string, len(f.items))
	copy(out, f.items)
	return out
}

// Count returns the number of features.
func (f Features) Count() int { return len(f.items) }

// IsEmpty reports whether no features are present.
func (f Features) IsEmpty() bool { return len(f.items) == 0 }

// Filter returns the features whose text matches the category's keywords.
func (f Features) Filter(category FeatureCategory) []string {
	keywords := categoryKeywords[category]
	var out []string
	for _, item := range f.items {
		lower := strings.ToLower(item)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Missing returns the suggested features for the type that are not present.
func (f Features) Missing(t Type) []string {
	var out []string
	for _, suggested := range t.SuggestedFeatures() {
		if !f.Contains(suggested) {
			out = append(out, suggested)
		}
	}
	return out
}

func (f Features) clone() Features {
	items := make([]string, len(f.items))
	copy(items, f.items)
	return Features{items: items}
}

// Equals compares item sequences exactly.
func (f Features) Equals(other Features) bool {
	if len(f.items) != len(other.items) {
		return false
	}
	for i, item := range f.items {
		if item != other.items[i] {
			return false
		}
	}
	return true
}
