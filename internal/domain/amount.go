package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal that may be missing or malformed on the wire. An
// invalid Amount still decodes so the record can be shown, but it is
// excluded from numeric aggregates.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount wraps a valid decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Value: d, Valid: true}
}

// ParseAmount never fails: unparsable input yields an invalid Amount.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return NewAmount(d)
}

// MustAmount is for literals in tests and fixtures.
func MustAmount(s string) Amount {
	return NewAmount(decimal.RequireFromString(s))
}

// Abs returns the absolute value, zero when invalid.
func (a Amount) Abs() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Value.Abs()
}

func (a Amount) IsCredit() bool { return a.Valid && a.Value.IsPositive() }
func (a Amount) IsDebit() bool  { return a.Valid && a.Value.IsNegative() }

func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return a.Value.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return a.Value.MarshalJSON()
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	var s string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount{}
			return nil
		}
	} else {
		s = string(data)
	}
	*a = ParseAmount(s)
	return nil
}
