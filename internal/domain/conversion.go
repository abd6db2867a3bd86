package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// ConversionQuote is one conversion result. It is superseded by the next.
type ConversionQuote struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	TargetCurrency   string          `json:"targetCurrency"`
}

// platformAliases are accepted spellings of the platform unit.
var platformAliases = map[string]bool{"AT": true, "AFT": true}

// NormalizeCurrency returns the canonical upper-case ISO code for s.
// Lower-case and underscored spellings ("rwf", "r_w_f") are folded, and
// the platform unit aliases map to PlatformCurrency.
func NormalizeCurrency(s string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(s, "_", "")))
	if code == "" {
		return "", &ValidationError{Field: "currency", Reason: "currency is required"}
	}
	if platformAliases[code] {
		return PlatformCurrency, nil
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", &ValidationError{Field: "currency", Reason: "unknown currency " + s}
	}
	return unit.String(), nil
}
