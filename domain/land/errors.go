/*
Package land - land domain error definitions.

Business rule violations carry a stable machine code so callers can branch on
them without string matching; errors.Is(err, shared.ErrBusinessRule) and
errors.As with *shared.BusinessRuleError both work. Value object validation
failures come from the factories via shared.NewValidationError.
*/
package land

import (
	"fmt"

	"landlisting/domain/shared"
)

// Business rule violation codes.
const (
	CodeIncompleteLandPublish    = "INCOMPLETE_LAND_PUBLISH"
	CodePublishedLandPriceChange = "PUBLISHED_LAND_PRICE_CHANGE"
	CodePublishedLandAreaChange  = "PUBLISHED_LAND_AREA_CHANGE"
	CodePublishedLandTypeChange  = "PUBLISHED_LAND_TYPE_CHANGE"
	CodeInvalidStatusTransition  = "INVALID_STATUS_TRANSITION"
	CodeBeachfrontMissingAccess  = "BEACHFRONT_MISSING_ACCESS"
	CodeBeachfrontPriceTooLow    = "BEACHFRONT_PRICE_TOO_LOW"
	CodeCommercialAreaTooSmall   = "COMMERCIAL_AREA_TOO_SMALL"
	CodeAgriculturalAreaTooSmall = "AGRICULTURAL_AREA_TOO_SMALL"
	CodePriceBelowMinimum        = "PRICE_BELOW_MINIMUM"
	CodeLandNotDeletable         = "LAND_NOT_DELETABLE"
)

// NewIncompletePublishError reports an attempt to publish an incomplete land.
func NewIncompletePublishError() error {
	return shared.NewBusinessRuleError(CodeIncompleteLandPublish,
		"land cannot be published until all required fields are complete")
}

// NewPublishedPriceChangeError reports a significant price change on a
// published listing.
func NewPublishedPriceChangeError(current, proposed Price) error {
	return shared.NewBusinessRuleError(CodePublishedLandPriceChange,
		fmt.Sprintf("price of a published land cannot change by more than 15%% (current %s, proposed %s)",
			current.Format(), proposed.Format()))
}

// NewPublishedAreaChangeError reports an area change on a published listing.
func NewPublishedAreaChangeError() error {
	return shared.NewBusinessRuleError(CodePublishedLandAreaChange,
		"area of a published land cannot be changed")
}

// NewPublishedTypeChangeError reports a type change on a published listing.
func NewPublishedTypeChangeError() error {
	return shared.NewBusinessRuleError(CodePublishedLandTypeChange,
		"type of a published land cannot be changed")
}

// NewInvalidTransitionError reports a transition the status graph forbids.
func NewInvalidTransitionError(from, to Status) error {
	return shared.NewBusinessRuleError(CodeInvalidStatusTransition,
		fmt.Sprintf("cannot transition land from %s to %s", from, to))
}

// NewLandNotFoundError reports a missing aggregate.
func NewLandNotFoundError(id string) error {
	return shared.NewNotFoundError("land", id)
}

// NewNotDeletableError reports a delete attempt in a protected status.
func NewNotDeletableError(status Status) error {
	return shared.NewBusinessRuleError(CodeLandNotDeletable,
		fmt.Sprintf("land in status %s cannot be deleted", status))
}
