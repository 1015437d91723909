package main

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Source workbooks are hand-maintained and mix locales: "1.500,00" next to
// "1,500.00" next to "Bs 45,00". ParseAmount turns any such cell into an
// exact decimal. Malformed non-empty text becomes zero with defaulted=true
// so the caller can count silently dropped values; empty cells are a plain
// zero. Parsing an already clean numeric string returns the same value, so
// the parser is idempotent.
func ParseAmount(raw string) (amount decimal.Decimal, defaulted bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return decimal.Zero, false
	}

	// Native numbers pass through unchanged.
	if d, err := decimal.NewFromString(text); err == nil {
		return d, false
	}

	cleaned := stripCurrencyTokens(text)
	cleaned = normalizeSeparators(cleaned)
	cleaned = keepNumericRunes(cleaned)
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, true
	}
	return d, false
}

// stripCurrencyTokens removes currency markers and whitespace, including
// non-breaking spaces which Excel likes to put into formatted cells.
func stripCurrencyTokens(s string) string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "BS", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	return strings.Join(strings.Fields(s), "")
}

// normalizeSeparators resolves the comma/dot ambiguity: when both are
// present the right-most one is the decimal point, a lone comma is a
// decimal point, a lone dot is kept as-is.
func normalizeSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	}
	return s
}

// keepNumericRunes drops everything except digits, the decimal point and
// a leading minus sign.
func keepNumericRunes(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
