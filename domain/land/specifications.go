package land

import (
	"context"
	"strings"

	"landlisting/domain/shared"
)

// Specifications expressing search criteria as composable predicates.
// The in-memory repository filters with them directly; the SQL repository
// translates the same criteria into WHERE clauses.

// ByTypeSpecification filters listings by land type.
type ByTypeSpecification struct {
	Type Type
}

func (spec ByTypeSpecification) IsSatisfiedBy(ctx context.Context, l *Land) bool {
	return l.Type() == spec.Type
}

// ByStatusSpecification filters listings by lifecycle status.
type ByStatusSpecification struct {
	Status Status
}

func (spec ByStatusSpecification) IsSatisfiedBy(ctx context.Context, l *Land) bool {
	return l.Status() == spec.Status
}

// ByCitySpecification filters listings by structured city, case-insensitive.
type ByCitySpecification struct {
	City string
}

func (spec ByCitySpecification) IsSatisfiedBy(ctx context.Context, l *Land) bool {
	return strings.EqualFold(l.Location().City(), spec.City)
}

// ByPriceRangeSpecification filters by price amount. Zero bounds are ignored.
type ByPriceRangeSpecification struct {
	Min int64
	Max int64
}

func (spec ByPriceRangeSpecification) IsSatisfiedBy(ctx context.Context, l *Land) bool {
	amount := l.Price().Amount()
	if spec.Min > 0 && amount < spec.Min {
		return false
	}
	if spec.Max > 0 && amount > spec.Max {
		return false
	}
	return true
}

// ByAreaRangeSpecification filters by area. Zero bounds are ignored.
type ByAreaRangeSpecification struct {
	Min int64
	Max int64
}

func (spec ByAreaRangeSpecification) IsSatisfiedBy(ctx context.Context, l *Land) bool {
	value := l.Area().Value()
	if spec.Min > 0 && value < spec.Min {
		return false
	}
	if spec.Max > 0 && value > spec.Max {
		return false
	}
	return true
}

// PubliclyVisibleSpecification keeps only listings buyers may see.
type PubliclyVisibleSpecification struct{}

func (spec PubliclyVisibleSpecification) IsSatisfiedBy(ctx context.Context, l *Land) bool {
	return l.Status().IsPubliclyVisible()
}

// TextQuerySpecification matches a free-text query against title and
// description, case-insensitive.
type TextQuerySpecification struct {
	Query string
}

func (spec TextQuerySpecification) IsSatisfiedBy(ctx context.Context, l *Land) bool {
	q := strings.ToLower(strings.TrimSpace(spec.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title().Value()), q) ||
		strings.Contains(strings.ToLower(l.Description().Value()), q)
}

// FromCriteria composes the specifications implied by the search criteria.
func FromCriteria(criteria SearchCriteria) shared.Specification[*Land] {
	specs := make([]shared.Specification[*Land], 0, 6)
	if criteria.Type != nil {
		specs = append(specs, ByTypeSpecification{Type: *criteria.Type})
	}
	if criteria.Status != nil {
		specs = append(specs, ByStatusSpecification{Status: *criteria.Status})
	}
	if criteria.City != "" {
		specs = append(specs, ByCitySpecification{City: criteria.City})
	}
	if criteria.MinPrice != nil || criteria.MaxPrice != nil {
		spec := ByPriceRangeSpecification{}
		if criteria.MinPrice != nil {
			spec.Min = *criteria.MinPrice
		}
		if criteria.MaxPrice != nil {
			spec.Max = *criteria.MaxPrice
		}
		specs = append(specs, spec)
	}
	if criteria.MinArea != nil || criteria.MaxArea != nil {
		spec := ByAreaRangeSpecification{}
		if criteria.MinArea != nil {
			spec.Min = *criteria.MinArea
		}
		if criteria.MaxArea != nil {
			spec.Max = *criteria.MaxArea
		}
		specs = append(specs, spec)
	}
	if criteria.OnlyVisible {
		specs = append(specs, PubliclyVisibleSpecification{})
	}
	if criteria.Query != "" {
		specs = append(specs, TextQuerySpecification{Query: criteria.Query})
	}

	if len(specs) == 0 {
		return matchAllSpecification{}
	}
	combined := specs[0]
	for _, spec := range specs[1:] {
		combined = shared.And(combined, spec)
	}
	return combined
}

// matchAllSpecification accepts every listing.
type matchAllSpecification struct{}

func (matchAllSpecification) IsSatisfiedBy(ctx context.Context, l *Land) bool { return true }
