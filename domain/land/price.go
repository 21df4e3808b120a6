package land

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"landlisting/domain/shared"
)

const (
	priceMinAmount = 1_000
	priceMaxAmount = 1_000_000_000

	// DefaultCurrency applies when the caller does not specify one.
	DefaultCurrency = "USD"

	// significantChangeThreshold gates price edits on published listings.
	significantChangeThreshold = 0.15
)

// Price is a listing price: a whole-number amount paired with a currency code.
// Invariants: integral amount within [1,000, 1,000,000,000], 3-letter currency.
// Arithmetic is same-currency only.
type Price struct {
	amount   int64
	currency string
}

// NewPrice validates and constructs a Price. An empty currency defaults to USD.
func NewPrice(amount float64, currency string) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, shared.NewValidationError("LandPrice", "amount", "must be a finite number")
	}
	if amount != math.Trunc(amount) {
		return Price{}, shared.NewValidationError("LandPrice", "amount", "must be a whole number, fractional currency units are not supported")
	}

	value := int64(amount)
	if value < priceMinAmount {
		return Price{}, shared.NewValidationError("LandPrice", "amount", "must be at least 1,000")
	}
	if value > priceMaxAmount {
		return Price{}, shared.NewValidationError("LandPrice", "amount", "must be at most 1,000,000,000")
	}

	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = DefaultCurrency
	}
	if len(code) != 3 || !isAlphabetic(code) {
		return Price{}, shared.NewValidationError("LandPrice", "currency", "must be a 3-letter currency code")
	}

	return Price{amount: value, currency: code}, nil
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Amount returns the whole-number amount.
func (p Price) Amount() int64 { return p.amount }

// Currency returns the 3-letter currency code.
func (p Price) Currency() string { return p.currency }

// Add returns a new Price. Cross-currency addition fails.
func (p Price) Add(other Price) (Price, error) {
	if p.currency != other.currency {
		return Price{}, shared.NewValidationError("LandPrice", "currency", "cannot add prices with different currencies")
	}
	return NewPrice(float64(p.amount+other.amount), p.currency)
}

// Subtract returns a new Price. Cross-currency subtraction fails, as does a
// result below the minimum valid price.
func (p Price) Subtract(other Price) (Price, error) {
	if p.currency != other.currency {
		return Price{}, shared.NewValidationError("LandPrice", "currency", "cannot subtract prices with different currencies")
	}
	return NewPrice(float64(p.amount-other.amount), p.currency)
}

// Multiply returns a new Price scaled by a positive whole factor, with
// overflow protection.
func (p Price) Multiply(factor int64) (Price, error) {
	if factor <= 0 {
		return Price{}, shared.NewValidationError("LandPrice", "factor", "multiplier must be positive")
	}
	if p.amount > math.MaxInt64/factor {
		return Price{}, shared.NewValidationError("LandPrice", "amount", "multiplication overflows")
	}
	return NewPrice(float64(p.amount*factor), p.currency)
}

// PerSquareMeter computes the unit price for the given area.
func (p Price) PerSquareMeter(area Area) float64 {
	if area.Value() == 0 {
		return 0
	}
	return float64(p.amount) / float64(area.Value())
}

// IsSignificantlyDifferentFrom reports whether the relative change from this
// price to the other exceeds 15%. Used to gate price edits on published
// listings.
func (p Price) IsSignificantlyDifferentFrom(other Price) bool {
	if p.amount == 0 {
		return other.amount != 0
	}
	change := math.Abs(float64(other.amount)-float64(p.amount)) / float64(p.amount)
	return change > significantChangeThreshold
}

// Equals compares amount and currency.
func (p Price) Equals(other Price) bool {
	return p.amount == other.amount && p.currency == other.currency
}

// IsZero reports whether the price was never constructed.
func (p Price) IsZero() bool { return p.amount == 0 }

var pricePrinter = message.NewPrinter(language.English)

// Format renders the price with thousands separators, e.g. "USD 500,000".
func (p Price) Format() string {
	return pricePrinter.Sprintf("%s %d", p.currency, p.amount)
}
