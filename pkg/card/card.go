// Package card validates the mock card details collected during the listing
// payment step. Nothing here ever reaches a real payment processor.
package card

import (
	"strconv"
	"strings"
	"time"
)

// Details holds the ephemeral card fields entered on the payment step.
type Details struct {
	Number string
	Name   string
	Expiry string // MM/YY
	CVV    string
}

// OnlyDigits strips every non-digit rune from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatNumber groups the digits of a card number in fours for display,
// keeping at most 20 digits.
func FormatNumber(s string) string {
	digits := OnlyDigits(s)
	if len(digits) > 20 {
		digits = digits[:20]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry normalizes free-form expiry input to MM/YY.
func FormatExpiry(s string) string {
	digits := OnlyDigits(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// ValidNumber reports whether the card number has 16 or 20 digits after
// stripping separators and passes the Luhn checksum.
func ValidNumber(number string) bool {
	digits := OnlyDigits(number)
	if len(digits) != 16 && len(digits) != 20 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidExpiry reports whether an MM/YY expiry is well-formed and not in the
// past relative to now.
func ValidExpiry(expiry string, now time.Time) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year < currentYear {
		return false
	}
	if year == currentYear && month < currentMonth {
		return false
	}
	return true
}

// ValidCVV reports whether the CVV is 3 or 4 digits.
func ValidCVV(cvv string) bool {
	d := OnlyDigits(cvv)
	return len(d) == 3 || len(d) == 4
}

// Complete reports whether every field of the card passes validation. This
// gates the MasterCard mock pay action.
func (d Details) Complete(now time.Time) bool {
	return ValidNumber(d.Number) &&
		ValidExpiry(d.Expiry, now) &&
		ValidCVV(d.CVV) &&
		strings.TrimSpace(d.Name) != ""
}
