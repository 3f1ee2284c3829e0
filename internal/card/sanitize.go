package card

import (
	"regexp"
	"strconv"
)

var nonDigit = regexp.MustCompile(`\D`)

// Sanitize turns raw input for f into the value to store. prev is the value
// currently stored; it is returned unchanged with ok=false when the edit is
// rejected (out-of-range month). Unknown fields are always rejected.
func Sanitize(f Field, raw, prev string) (value string, ok bool) {
	switch f {
	case FieldHolderName:
		return truncateRunes(raw, MaxHolderName), true
	case FieldCardNumber, FieldExpiryYear, FieldSecurityCode:
		return digits(raw, f.MaxLen()), true
	case FieldExpiryMonth:
		m := digits(raw, MaxExpiryMonth)
		if m == "" || monthInRange(m) {
			return m, true
		}
		return prev, false
	default:
		return prev, false
	}
}

func digits(raw string, max int) string {
	d := nonDigit.ReplaceAllString(raw, "")
	if len(d) > max {
		d = d[:max]
	}
	return d
}

func monthInRange(m string) bool {
	n, err := strconv.Atoi(m)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 12
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
