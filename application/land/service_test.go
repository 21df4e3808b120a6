package land

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "landlisting/domain/land"
	"landlisting/domain/shared"
	"landlisting/infrastructure/persistence/mocks"
)

func float64Ptr(f float64) *float64 { return &f }
func strPtr(s string) *string       { return &s }

func beachfrontRequest() CreateLandRequest {
	return CreateLandRequest{
		Name:        "Beachfront Paradise in Bávaro",
		Description: "Stunning beachfront lot with direct beach access, crystal clear water and white sand beach. Perfect for a boutique hotel or a private villa development project.",
		Area:        2500,
		Price:       500000,
		Currency:    "USD",
		Location:    "Playa Bávaro, Carretera Verón",
		City:        "Punta Cana",
		Province:    "La Altagracia",
		Country:     "Dominican Republic",
		Latitude:    float64Ptr(18.6829),
		Longitude:   float64Ptr(-68.4055),
		Type:        "beachfront",
		Features:    []string{"Beach Access", "Electricity", "Ocean View"},
		Images: []ImageRequest{
			{URL: "https://images.example.com/bavaro-1.jpg", Alt: "Aerial view"},
			{URL: "https://images.example.com/bavaro-2.jpg", Alt: "Shoreline"},
		},
	}
}

func newService() *ApplicationService {
	return NewApplicationService(mocks.NewMockLandRepository())
}

// createListing creates a listing through the service, failing on error.
func createListing(t *testing.T, svc *ApplicationService, mutate func(*CreateLandRequest)) *LandResponse {
	t.Helper()
	req := beachfrontRequest()
	if mutate != nil {
		mutate(&req)
	}
	resp, err := svc.CreateLand(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateLand failed: %v", err)
	}
	return resp
}

func TestCreateLand(t *testing.T) {
	svc := newService()
	resp := createListing(t, svc, nil)

	if resp.ID == "" {
		t.Error("created listing must carry an id")
	}
	if resp.Status != "draft" {
		t.Errorf("Status = %q, want draft", resp.Status)
	}
	if resp.Slug != "beachfront-paradise-in-bavaro" {
		t.Errorf("Slug = %q", resp.Slug)
	}
	if resp.Area.Formatted != "2,500 m²" {
		t.Errorf("Area.Formatted = %q", resp.Area.Formatted)
	}
	if resp.Price.PerSquareMeter != 200 {
		t.Errorf("Price.PerSquareMeter = %v, want 200", resp.Price.PerSquareMeter)
	}
	if resp.Location.Geohash == "" {
		t.Error("listings with coordinates must expose a geohash")
	}
	if len(resp.Images) != 2 || resp.Images[0].DisplayOrder != 0 {
		t.Errorf("Images = %+v", resp.Images)
	}
	if !resp.IsComplete {
		t.Error("the canonical listing is complete")
	}
}

func TestCreateLandRejectsInvalidInput(t *testing.T) {
	svc := newService()
	req := beachfrontRequest()
	req.Type = "volcanic"

	_, err := svc.CreateLand(context.Background(), req)
	if !errors.Is(err, shared.ErrValidation) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestGetLand(t *testing.T) {
	svc := newService()
	created := createListing(t, svc, nil)

	got, err := svc.GetLand(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetLand failed: %v", err)
	}
	if got.ID != created.ID || got.Name != created.Name {
		t.Error("GetLand should return the stored listing")
	}

	_, err = svc.GetLand(context.Background(), "does-not-exist")
	if !errors.Is(err, shared.ErrNotFound) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestSearchLands(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	createListing(t, svc, nil)
	createListing(t, svc, func(r *CreateLandRequest) {
		r.Name = "Commercial Corner Lot Santo Domingo"
		r.Type = "commercial"
		r.Area = 850
		r.Price = 425000
		r.City = "Santo Domingo"
	})

	result, err := svc.SearchLands(ctx, SearchLandsQuery{})
	if err != nil {
		t.Fatalf("SearchLands failed: %v", err)
	}
	if result.Total != 2 || result.CurrentPage != 1 {
		t.Errorf("got total=%d page=%d", result.Total, result.CurrentPage)
	}

	result, err = svc.SearchLands(ctx, SearchLandsQuery{Type: "commercial"})
	if err != nil {
		t.Fatalf("SearchLands failed: %v", err)
	}
	if result.Total != 1 || result.Lands[0].Type != "commercial" {
		t.Error("type filter should narrow the result")
	}

	if _, err := svc.SearchLands(ctx, SearchLandsQuery{Type: "volcanic"}); err == nil {
		t.Error("an unknown type filter should fail")
	}
	if _, err := svc.SearchLands(ctx, SearchLandsQuery{Status: "pending"}); err == nil {
		t.Error("an unknown status filter should fail")
	}
	if _, err := svc.SearchLands(ctx, SearchLandsQuery{SortBy: "name"}); !errors.Is(err, shared.ErrValidation) {
		t.Errorf("an unsupported sort key should fail validation, got %v", err)
	}
}

func TestSearchLandsClampsPaging(t *testing.T) {
	svc := newService()
	createListing(t, svc, nil)

	result, err := svc.SearchLands(context.Background(), SearchLandsQuery{Page: -3, PageSize: 5000})
	if err != nil {
		t.Fatalf("SearchLands failed: %v", err)
	}
	if result.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want clamped to 1", result.CurrentPage)
	}
}

func TestUpdateLandPrice(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	created := createListing(t, svc, nil)

	updated, err := svc.UpdateLandPrice(ctx, created.ID, UpdateLandPriceRequest{Price: 550000})
	if err != nil {
		t.Fatalf("UpdateLandPrice failed: %v", err)
	}
	if updated.Price.Amount != 550000 {
		t.Errorf("Amount = %d, want 550000", updated.Price.Amount)
	}

	// The domain service floor still applies on drafts: $80/m² beachfront.
	_, err = svc.UpdateLandPrice(ctx, created.ID, UpdateLandPriceRequest{Price: 200000})
	var ruleErr *shared.BusinessRuleError
	if !errors.As(err, &ruleErr) || ruleErr.Code != domain.CodePriceBelowMinimum {
		t.Errorf("expected PRICE_BELOW_MINIMUM, got %v", err)
	}
}

func TestUpdateLandPriceGateOnPublished(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	created := createListing(t, svc, nil)
	if _, err := svc.PublishLand(ctx, created.ID); err != nil {
		t.Fatalf("PublishLand failed: %v", err)
	}

	_, err := svc.UpdateLandPrice(ctx, created.ID, UpdateLandPriceRequest{Price: 700000})
	var ruleErr *shared.BusinessRuleError
	if !errors.As(err, &ruleErr) || ruleErr.Code != domain.CodePublishedLandPriceChange {
		t.Errorf("expected PUBLISHED_LAND_PRICE_CHANGE, got %v", err)
	}
}

func TestUpdateLandDetails(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	created := createListing(t, svc, nil)

	updated, err := svc.UpdateLandDetails(ctx, created.ID, UpdateLandDetailsRequest{
		Name:     strPtr("Beachfront Jewel in Bávaro"),
		Features: []string{"Road Access"},
		Location: &UpdateLocationRequest{
			Address:  "Playa Bávaro, Carretera Verón km 2",
			City:     "Punta Cana",
			Province: "La Altagracia",
		},
	})
	if err != nil {
		t.Fatalf("UpdateLandDetails failed: %v", err)
	}
	if updated.Name != "Beachfront Jewel in Bávaro" {
		t.Errorf("Name = %q", updated.Name)
	}
	if updated.Slug != "beachfront-jewel-in-bavaro" {
		t.Errorf("Slug = %q, want it recomputed from the new name", updated.Slug)
	}
	// Untouched fields survive a partial update.
	if updated.Area.SquareMeters != 2500 || updated.Description != created.Description {
		t.Error("partial updates must not clear other fields")
	}
	found := false
	for _, f := range updated.Features {
		if f == "Road Access" {
			found = true
		}
	}
	if !found {
		t.Errorf("Features = %v, want Road Access appended", updated.Features)
	}
	// The replaced location dropped its coordinates.
	if updated.Location.Latitude != nil || updated.Location.Geohash != "" {
		t.Error("a location without coordinates has no geohash")
	}
}

func TestPublishLand(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	created := createListing(t, svc, nil)

	published, err := svc.PublishLand(ctx, created.ID)
	if err != nil {
		t.Fatalf("PublishLand failed: %v", err)
	}
	if published.Status != "published" {
		t.Errorf("Status = %q, want published", published.Status)
	}

	// Publication rules are checked before the transition.
	blocked := createListing(t, svc, func(r *CreateLandRequest) {
		r.Name = "Beachfront Without Access"
		r.Features = []string{"Electricity"}
	})
	_, err = svc.PublishLand(ctx, blocked.ID)
	var ruleErr *shared.BusinessRuleError
	if !errors.As(err, &ruleErr) || ruleErr.Code != domain.CodeBeachfrontMissingAccess {
		t.Errorf("expected BEACHFRONT_MISSING_ACCESS, got %v", err)
	}
}

func TestStatusTransitions(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	created := createListing(t, svc, nil)

	if _, err := svc.PublishLand(ctx, created.ID); err != nil {
		t.Fatalf("PublishLand failed: %v", err)
	}

	reserved, err := svc.ReserveLand(ctx, created.ID)
	if err != nil {
		t.Fatalf("ReserveLand failed: %v", err)
	}
	if reserved.Status != "reserved" {
		t.Errorf("Status = %q, want reserved", reserved.Status)
	}

	sold, err := svc.MarkLandSold(ctx, created.ID)
	if err != nil {
		t.Fatalf("MarkLandSold failed: %v", err)
	}
	if sold.Status != "sold" {
		t.Errorf("Status = %q, want sold", sold.Status)
	}

	archived, err := svc.ArchiveLand(ctx, created.ID)
	if err != nil {
		t.Fatalf("ArchiveLand failed: %v", err)
	}
	if archived.Status != "archived" {
		t.Errorf("Status = %q, want archived", archived.Status)
	}

	restored, err := svc.RestoreLand(ctx, created.ID)
	if err != nil {
		t.Fatalf("RestoreLand failed: %v", err)
	}
	if restored.Status != "draft" {
		t.Errorf("Status = %q, want draft", restored.Status)
	}

	// Invalid transitions surface the domain error.
	if _, err := svc.MarkLandSold(ctx, created.ID); err == nil {
		t.Error("selling a draft should fail")
	}
}

func TestUnpublishLand(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	created := createListing(t, svc, nil)
	if _, err := svc.PublishLand(ctx, created.ID); err != nil {
		t.Fatalf("PublishLand failed: %v", err)
	}

	unpublished, err := svc.UnpublishLand(ctx, created.ID)
	if err != nil {
		t.Fatalf("UnpublishLand failed: %v", err)
	}
	if unpublished.Status != "draft" {
		t.Errorf("Status = %q, want draft", unpublished.Status)
	}
}

func TestDeleteLand(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	created := createListing(t, svc, nil)

	if err := svc.DeleteLand(ctx, created.ID); err != nil {
		t.Fatalf("deleting a draft should pass: %v", err)
	}
	if _, err := svc.GetLand(ctx, created.ID); !errors.Is(err, shared.ErrNotFound) {
		t.Error("deleted listing must be gone")
	}

	published := createListing(t, svc, nil)
	if _, err := svc.PublishLand(ctx, published.ID); err != nil {
		t.Fatalf("PublishLand failed: %v", err)
	}
	err := svc.DeleteLand(ctx, published.ID)
	var ruleErr *shared.BusinessRuleError
	if !errors.As(err, &ruleErr) || ruleErr.Code != domain.CodeLandNotDeletable {
		t.Errorf("expected LAND_NOT_DELETABLE, got %v", err)
	}
}

func TestValidateLandForPublication(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	ok := createListing(t, svc, nil)
	check, err := svc.ValidateLandForPublication(ctx, ok.ID)
	if err != nil {
		t.Fatalf("ValidateLandForPublication failed: %v", err)
	}
	if !check.CanPublish || check.Violation != "" {
		t.Errorf("got %+v, want publishable", check)
	}

	// Blocking rules come back as a violation, not an error.
	blocked := createListing(t, svc, func(r *CreateLandRequest) {
		r.Name = "Beachfront Without Access"
		r.Features = []string{"Electricity"}
	})
	check, err = svc.ValidateLandForPublication(ctx, blocked.ID)
	if err != nil {
		t.Fatalf("a violation must not be an error: %v", err)
	}
	if check.CanPublish || check.Violation != domain.CodeBeachfrontMissingAccess {
		t.Errorf("got %+v, want a BEACHFRONT_MISSING_ACCESS violation", check)
	}
	if check.Reason == "" {
		t.Error("violations carry a human-readable reason")
	}
}

func TestAssessLandValue(t *testing.T) {
	svc := newService()
	created := createListing(t, svc, nil)

	valuation, err := svc.AssessLandValue(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("AssessLandValue failed: %v", err)
	}
	if valuation.PricePerSquareMeter != 200 {
		t.Errorf("PricePerSquareMeter = %v", valuation.PricePerSquareMeter)
	}
	if valuation.Classification != "market-rate" || valuation.Confidence != "high" {
		t.Errorf("got %s/%s, want market-rate/high", valuation.Classification, valuation.Confidence)
	}
	if valuation.RangeMin != 200 || valuation.RangeMax != 2000 {
		t.Errorf("range = %v-%v, want the Punta Cana adjusted range", valuation.RangeMin, valuation.RangeMax)
	}
}

func TestGetSEOSuggestions(t *testing.T) {
	svc := newService()
	created := createListing(t, svc, nil)

	seo, err := svc.GetSEOSuggestions(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetSEOSuggestions failed: %v", err)
	}
	if seo.Slug != "beachfront-paradise-in-bavaro" {
		t.Errorf("Slug = %q", seo.Slug)
	}
	if !strings.Contains(seo.MetaDescription, "USD 500,000") {
		t.Errorf("MetaDescription = %q", seo.MetaDescription)
	}
	if len(seo.Keywords) == 0 {
		t.Error("keywords must not be empty")
	}
}

func TestFindSimilarLands(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	base := createListing(t, svc, nil)
	if _, err := svc.PublishLand(ctx, base.ID); err != nil {
		t.Fatalf("PublishLand failed: %v", err)
	}

	twin := createListing(t, svc, func(r *CreateLandRequest) {
		r.Name = "Second Beachfront Lot in Bávaro"
		r.Area = 3000
		r.Price = 600000
	})
	if _, err := svc.PublishLand(ctx, twin.ID); err != nil {
		t.Fatalf("PublishLand failed: %v", err)
	}

	similar, err := svc.FindSimilarLands(ctx, base.ID)
	if err != nil {
		t.Fatalf("FindSimilarLands failed: %v", err)
	}
	if len(similar) != 1 || similar[0].ID != twin.ID {
		t.Errorf("FindSimilarLands returned %d listings", len(similar))
	}
}
