package land

import (
	"fmt"
	"math"
	"strings"

	"landlisting/domain/shared"
)

// Publication thresholds per land type.
const (
	beachfrontMinPricePerSquareMeter = 100.0
	commercialMinAreaSquareMeters    = 500
	agriculturalMinAreaSquareMeters  = 1000
)

// PricingRange bounds the typical price per square meter for a land type.
type PricingRange struct {
	Min float64
	Max float64
}

// pricingRanges is the policy table for pricing validation and market value
// assessment, in USD per square meter.
var pricingRanges = map[Type]PricingRange{
	TypeCommercial:   {Min: 50, Max: 500},
	TypeResidential:  {Min: 30, Max: 400},
	TypeAgricultural: {Min: 5, Max: 100},
	TypeBeachfront:   {Min: 100, Max: 1000},
	TypeIndustrial:   {Min: 40, Max: 300},
	TypeMixedUse:     {Min: 35, Max: 450},
}

// premiumLocations multiply assessment range bounds when the location string
// contains the place name. Matching is case-insensitive.
var premiumLocations = map[string]float64{
	"punta cana":    2.0,
	"cap cana":      2.0,
	"casa de campo": 2.0,
	"bávaro":        1.5,
	"bavaro":        1.5,
	"las terrenas":  1.5,
	"santo domingo": 1.5,
}

// Classification of a listing's price against the adjusted market range.
type Classification string

const (
	BelowMarket Classification = "below-market"
	MarketRate  Classification = "market-rate"
	AboveMarket Classification = "above-market"
)

// Confidence tier of a market value assessment.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Confidence scoring: completeness weighs double, each data signal adds one.
const (
	confidencePointsComplete    = 2
	confidenceMinWordCount      = 20
	confidenceHighThreshold     = 5
	confidenceMediumThreshold   = 3
	similarAreaRelativeMaxDelta = 0.5
)

// PublicationValidation is the outcome of a successful publication check.
// Notes carry advisory guidance that is deliberately not enforced.
type PublicationValidation struct {
	Notes []string
}

// MarketValueAssessment classifies a listing's asking price.
type MarketValueAssessment struct {
	PricePerSquareMeter float64
	Range               PricingRange // adjusted for premium locations
	Classification      Classification
	Confidence          Confidence
	Notes               []string
}

// PricingValidation is the outcome of a successful pricing check.
type PricingValidation struct {
	PricePerSquareMeter float64
	Notes               []string
}

// SEOSuggestions is generated listing copy.
type SEOSuggestions struct {
	Title           string
	MetaDescription string
	Slug            string
	Keywords        []string
}

// DomainService computes business rules spanning multiple value objects or
// requiring policy tables. Stateless; takes aggregates in, returns results or
// business rule errors, never persists.
type DomainService struct{}

// NewDomainService creates the land domain service.
func NewDomainService() *DomainService {
	return &DomainService{}
}

// ============================================================================
// Publication validation
// ============================================================================

// typePublicationCheck validates type-specific publication rules.
// Hard failures return an error; soft guidance lands in notes.
type typePublicationCheck func(l *Land) (notes []string, err error)

var publicationChecks = map[Type]typePublicationCheck{
	TypeBeachfront:   checkBeachfrontPublication,
	TypeCommercial:   checkCommercialPublication,
	TypeAgricultural: checkAgriculturalPublication,
}

func checkBeachfrontPublication(l *Land) ([]string, error) {
	if !l.Features().Contains("Beach Access") {
		return nil, shared.NewBusinessRuleError(CodeBeachfrontMissingAccess,
			"beachfront land must list a Beach Access feature")
	}
	if l.PricePerSquareMeter() < beachfrontMinPricePerSquareMeter {
		return nil, shared.NewBusinessRuleError(CodeBeachfrontPriceTooLow,
			fmt.Sprintf("beachfront land must be priced at least $%.0f per square meter", beachfrontMinPricePerSquareMeter))
	}
	return nil, nil
}

func checkCommercialPublication(l *Land) ([]string, error) {
	if l.Area().Value() < commercialMinAreaSquareMeters {
		return nil, shared.NewBusinessRuleError(CodeCommercialAreaTooSmall,
			fmt.Sprintf("commercial land must be at least %d square meters", commercialMinAreaSquareMeters))
	}
	var notes []string
	if !l.Features().Contains("Road Access") {
		notes = append(notes, "commercial land should have road access")
	}
	return notes, nil
}

func checkAgriculturalPublication(l *Land) ([]string, error) {
	if l.Area().Value() < agriculturalMinAreaSquareMeters {
		return nil, shared.NewBusinessRuleError(CodeAgriculturalAreaTooSmall,
			fmt.Sprintf("agricultural land must be at least %d square meters", agriculturalMinAreaSquareMeters))
	}
	var notes []string
	if !l.Features().Contains("Water Access") {
		notes = append(notes, "agricultural land should have water access")
	}
	return notes, nil
}

// ValidateForPublication checks completeness plus the type-specific rules.
// Advisory conditions are returned as notes, not errors.
func (s *DomainService) ValidateForPublication(l *Land) (*PublicationValidation, error) {
	if !l.IsComplete() {
		return nil, NewIncompletePublishError()
	}

	result := &PublicationValidation{}
	if check, ok := publicationChecks[l.Type()]; ok {
		notes, err := check(l)
		if err != nil {
			return nil, err
		}
		result.Notes = append(result.Notes, notes...)
	}
	result.Notes = append(result.Notes, l.Location().Warnings()...)
	result.Notes = append(result.Notes, l.Images().Warnings()...)
	return result, nil
}

// ============================================================================
// Market value assessment
// ============================================================================

// locationMultiplier returns the premium factor for the location, 1 when no
// premium place name appears in the address or structured fields.
func locationMultiplier(loc Location) float64 {
	haystack := strings.ToLower(loc.Address() + " " + loc.City() + " " + loc.Province())
	multiplier := 1.0
	for place, factor := range premiumLocations {
		if strings.Contains(haystack, place) && factor > multiplier {
			multiplier = factor
		}
	}
	return multiplier
}

// AssessMarketValue classifies the asking price against the type's typical
// range, adjusted for premium locations, and derives a confidence tier from
// how much supporting data the listing carries.
func (s *DomainService) AssessMarketValue(l *Land) (*MarketValueAssessment, error) {
	baseRange, ok := pricingRanges[l.Type()]
	if !ok {
		return nil, shared.NewValidationError("LandType", "value", "no pricing range for type: "+l.Type().String())
	}

	multiplier := locationMultiplier(l.Location())
	adjusted := PricingRange{Min: baseRange.Min * multiplier, Max: baseRange.Max * multiplier}

	perSquareMeter := l.PricePerSquareMeter()
	classification := MarketRate
	switch {
	case perSquareMeter < adjusted.Min:
		classification = BelowMarket
	case perSquareMeter > adjusted.Max:
		classification = AboveMarket
	}

	points := 0
	if l.IsComplete() {
		points += confidencePointsComplete
	}
	if !l.Images().IsEmpty() {
		points++
	}
	if !l.Features().IsEmpty() {
		points++
	}
	if l.Location().HasCoordinates() {
		points++
	}
	if l.Description().WordCount() >= confidenceMinWordCount {
		points++
	}

	confidence := ConfidenceLow
	switch {
	case points >= confidenceHighThreshold:
		confidence = ConfidenceHigh
	case points >= confidenceMediumThreshold:
		confidence = ConfidenceMedium
	}

	assessment := &MarketValueAssessment{
		PricePerSquareMeter: perSquareMeter,
		Range:               adjusted,
		Classification:      classification,
		Confidence:          confidence,
	}
	if multiplier > 1 {
		assessment.Notes = append(assessment.Notes,
			fmt.Sprintf("premium location multiplier %.1fx applied", multiplier))
	}
	return assessment, nil
}

// ============================================================================
// Pricing validation
// ============================================================================

// ValidatePricing enforces the per-type price floor. Prices above the typical
// ceiling are flagged as a note, not rejected: sellers may ask what they like,
// the platform only protects against listings priced below credibility.
func (s *DomainService) ValidatePricing(l *Land) (*PricingValidation, error) {
	r, ok := pricingRanges[l.Type()]
	if !ok {
		return nil, shared.NewValidationError("LandType", "value", "no pricing range for type: "+l.Type().String())
	}

	perSquareMeter := l.PricePerSquareMeter()
	if perSquareMeter < r.Min {
		return nil, shared.NewBusinessRuleError(CodePriceBelowMinimum,
			fmt.Sprintf("%s land must be priced at least $%.0f per square meter, got $%.2f",
				l.Type(), r.Min, perSquareMeter))
	}

	result := &PricingValidation{PricePerSquareMeter: perSquareMeter}
	if perSquareMeter > r.Max {
		result.Notes = append(result.Notes,
			fmt.Sprintf("price of $%.2f per square meter is above the typical maximum of $%.0f for %s land",
				perSquareMeter, r.Max, l.Type()))
	}
	return result, nil
}

// ============================================================================
// Similarity
// ============================================================================

// AreSimilarLands reports whether two listings are comparable: same type,
// areas within 50% relative difference, and the same city when both carry
// city data. Listings without city data fall back to similar - deliberately
// lenient, kept as specified.
func (s *DomainService) AreSimilarLands(a, b *Land) bool {
	if a.Type() != b.Type() {
		return false
	}

	areaA := float64(a.Area().Value())
	areaB := float64(b.Area().Value())
	if math.Abs(areaA-areaB)/math.Max(areaA, areaB) > similarAreaRelativeMaxDelta {
		return false
	}

	cityA := strings.ToLower(a.Location().City())
	cityB := strings.ToLower(b.Location().City())
	if cityA != "" && cityB != "" && cityA != cityB {
		return false
	}
	return true
}

// ============================================================================
// SEO generation
// ============================================================================

// seoStaticKeywords always appear in generated keyword lists.
var seoStaticKeywords = []string{"land for sale", "real estate", "dominican republic"}

const seoExcerptLength = 120

// GenerateSEOSuggestions produces listing copy from the aggregate's state.
// Pure string templating; empty values are filtered from the keyword list.
func (s *DomainService) GenerateSEOSuggestions(l *Land) *SEOSuggestions {
	title := fmt.Sprintf("%s - %s in %s",
		l.Title().Value(), l.Type().Description(), l.Location().ShortForm())

	meta := fmt.Sprintf("%s of %s land in %s for %s. %s",
		l.Area().Format(), l.Type(), l.Location().ShortForm(), l.Price().Format(),
		l.Description().Excerpt(seoExcerptLength))

	keywords := make([]string, 0, 8+len(seoStaticKeywords))
	keywords = append(keywords, l.Type().String()+" land")
	keywords = append(keywords, seoStaticKeywords...)
	keywords = append(keywords,
		l.Location().City(),
		l.Location().Province(),
		fmt.Sprintf("%.1f tareas", l.AreaInTareas()),
		strings.ToLower(l.Price().Currency()),
	)

	filtered := keywords[:0]
	for _, kw := range keywords {
		if strings.TrimSpace(kw) != "" {
			filtered = append(filtered, kw)
		}
	}

	return &SEOSuggestions{
		Title:           title,
		MetaDescription: meta,
		Slug:            l.Title().Slug(),
		Keywords:        filtered,
	}
}
