package service

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// sanitizePrice strips everything but digits and dots from a submitted
// price string ("$12.50", "12.50 USD") and parses the rest as a decimal.
// ok is false when nothing parsable remains.
func sanitizePrice(raw string) (price decimal.Decimal, ok bool) {
	cleaned := nonPriceChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero, false
	}

	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}

	return price, true
}
