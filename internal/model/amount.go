package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySuffix is appended to every rendered monetary value.
const CurrencySuffix = "MAD"

// Bounds on typed amounts. Exponents outside them would be expanded into
// huge digit strings on compare and format.
const (
	MaxAmountLength   = 32
	MaxAmountScale    = 8
	MaxAmountExponent = 12
)

// AmountText is a monetary value exactly as the caller typed it. It is kept
// unparsed so the ledger can tell "missing" and "not a number" apart from a
// negative value and report each one distinctly.
//
// It decodes from both JSON strings ("12.50") and JSON numbers (12.5).
type AmountText string

func (a *AmountText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AmountText(s)
		return nil
	}
	*a = AmountText(b)
	return nil
}

// Parse returns the decimal value. ok is false when the text is empty, not
// a finite number, longer than MaxAmountLength, has more than
// MaxAmountScale decimals or an exponent above MaxAmountExponent.
func (a AmountText) Parse() (d decimal.Decimal, ok bool) {
	s := strings.TrimSpace(string(a))
	if s == "" || len(s) > MaxAmountLength {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp < -MaxAmountScale || exp > MaxAmountExponent {
		return decimal.Zero, false
	}
	return d, true
}

// FormatMoney renders d with exactly two decimals and the currency suffix.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + CurrencySuffix
}

// DateText is a calendar date as typed in a form. Empty means unset.
type DateText string

const dateLayout = "2006-01-02"

// Parse accepts a bare date or a full RFC 3339 timestamp. A bare date is
// taken as midnight UTC.
func (d DateText) Parse() (*time.Time, error) {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
