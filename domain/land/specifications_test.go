package land

import (
	"context"
	"testing"

	"landlisting/domain/shared"
)

func int64Ptr(v int64) *int64 { return &v }

func typePtr(t Type) *Type       { return &t }
func statusPtr(s Status) *Status { return &s }

// specFixture builds a small, varied set of listings for predicate tests.
func specFixture(t *testing.T) (beachfront, commercial, agricultural *Land) {
	t.Helper()

	beachfront = newBavaroLand(t)
	if err := beachfront.Publish(); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	commercial = buildLand(t, func(d *CreateLandData) {
		d.Name = "Corner Lot on Avenida Churchill"
		d.Description = "Commercial corner lot on a prime avenue of the capital, ready for a retail or office development."
		d.Type = "commercial"
		d.Area = 850
		d.Price = 425_000
		d.Location = "Av. Winston Churchill esq. Gustavo Mejía Ricart"
		d.City = "Santo Domingo"
		d.Province = "Distrito Nacional"
	})

	agricultural = buildLand(t, func(d *CreateLandData) {
		d.Name = "Fertile Valley Farmland in Constanza"
		d.Description = "Productive farmland in the Constanza valley with rich soil, suitable for vegetables and flowers."
		d.Type = "agricultural"
		d.Area = 52_000
		d.Price = 180_000
		d.Location = "Valle de Constanza, sección El Limoncito"
		d.City = "Constanza"
		d.Province = "La Vega"
	})
	return beachfront, commercial, agricultural
}

func TestFromCriteriaMatchAll(t *testing.T) {
	ctx := context.Background()
	beachfront, commercial, agricultural := specFixture(t)

	spec := FromCriteria(SearchCriteria{})
	for _, l := range []*Land{beachfront, commercial, agricultural} {
		if !spec.IsSatisfiedBy(ctx, l) {
			t.Errorf("empty criteria should match %s", l.Title().Value())
		}
	}
}

func TestFromCriteriaByTypeAndStatus(t *testing.T) {
	ctx := context.Background()
	beachfront, commercial, _ := specFixture(t)

	spec := FromCriteria(SearchCriteria{Type: typePtr(TypeBeachfront)})
	if !spec.IsSatisfiedBy(ctx, beachfront) || spec.IsSatisfiedBy(ctx, commercial) {
		t.Error("type criteria should keep only beachfront listings")
	}

	spec = FromCriteria(SearchCriteria{Status: statusPtr(StatusPublished)})
	if !spec.IsSatisfiedBy(ctx, beachfront) || spec.IsSatisfiedBy(ctx, commercial) {
		t.Error("status criteria should keep only published listings")
	}
}

func TestFromCriteriaByCity(t *testing.T) {
	ctx := context.Background()
	_, commercial, agricultural := specFixture(t)

	spec := FromCriteria(SearchCriteria{City: "santo domingo"})
	if !spec.IsSatisfiedBy(ctx, commercial) {
		t.Error("city match must be case-insensitive")
	}
	if spec.IsSatisfiedBy(ctx, agricultural) {
		t.Error("city criteria should exclude other cities")
	}
}

func TestFromCriteriaByRanges(t *testing.T) {
	ctx := context.Background()
	beachfront, commercial, agricultural := specFixture(t)

	spec := FromCriteria(SearchCriteria{
		MinPrice: int64Ptr(200_000),
		MaxPrice: int64Ptr(450_000),
	})
	if spec.IsSatisfiedBy(ctx, beachfront) { // 500,000
		t.Error("price range should exclude listings above the max")
	}
	if !spec.IsSatisfiedBy(ctx, commercial) { // 425,000
		t.Error("price range should include listings inside the bounds")
	}
	if spec.IsSatisfiedBy(ctx, agricultural) { // 180,000
		t.Error("price range should exclude listings below the min")
	}

	spec = FromCriteria(SearchCriteria{MinArea: int64Ptr(1000)})
	if spec.IsSatisfiedBy(ctx, commercial) || !spec.IsSatisfiedBy(ctx, agricultural) {
		t.Error("open-ended area range should only apply its min bound")
	}
}

func TestFromCriteriaOnlyVisible(t *testing.T) {
	ctx := context.Background()
	beachfront, commercial, _ := specFixture(t)

	spec := FromCriteria(SearchCriteria{OnlyVisible: true})
	if !spec.IsSatisfiedBy(ctx, beachfront) {
		t.Error("published listings are publicly visible")
	}
	if spec.IsSatisfiedBy(ctx, commercial) {
		t.Error("drafts are not publicly visible")
	}

	if err := beachfront.Reserve(); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if !spec.IsSatisfiedBy(ctx, beachfront) {
		t.Error("reserved listings stay publicly visible")
	}
}

func TestFromCriteriaTextQuery(t *testing.T) {
	ctx := context.Background()
	beachfront, commercial, _ := specFixture(t)

	spec := FromCriteria(SearchCriteria{Query: "BOUTIQUE HOTEL"})
	if !spec.IsSatisfiedBy(ctx, beachfront) {
		t.Error("query should match the description case-insensitively")
	}
	if spec.IsSatisfiedBy(ctx, commercial) {
		t.Error("query should exclude non-matching listings")
	}

	spec = FromCriteria(SearchCriteria{Query: "corner lot"})
	if !spec.IsSatisfiedBy(ctx, commercial) {
		t.Error("query should match the title case-insensitively")
	}
}

func TestFromCriteriaComposition(t *testing.T) {
	ctx := context.Background()
	beachfront, commercial, agricultural := specFixture(t)

	spec := FromCriteria(SearchCriteria{
		Type:     typePtr(TypeAgricultural),
		City:     "Constanza",
		MinArea:  int64Ptr(10_000),
		MaxPrice: int64Ptr(200_000),
	})
	if !spec.IsSatisfiedBy(ctx, agricultural) {
		t.Error("all criteria should combine with AND")
	}
	if spec.IsSatisfiedBy(ctx, beachfront) || spec.IsSatisfiedBy(ctx, commercial) {
		t.Error("composed criteria should exclude everything else")
	}
}

func TestSpecificationCombinators(t *testing.T) {
	ctx := context.Background()
	beachfront, commercial, _ := specFixture(t)

	byType := ByTypeSpecification{Type: TypeBeachfront}
	byCity := ByCitySpecification{City: "Santo Domingo"}

	either := shared.Or[*Land](byType, byCity)
	if !either.IsSatisfiedBy(ctx, beachfront) || !either.IsSatisfiedBy(ctx, commercial) {
		t.Error("Or should accept a listing matching either side")
	}

	neither := shared.Not(either)
	if neither.IsSatisfiedBy(ctx, beachfront) {
		t.Error("Not should invert the inner specification")
	}
}
