package card

import (
	"errors"
	"fmt"
	"strings"
)

// Field identifies one of the five form inputs.
type Field string

const (
	FieldHolderName   Field = "holderName"
	FieldCardNumber   Field = "cardNumber"
	FieldExpiryMonth  Field = "expiryMonth"
	FieldExpiryYear   Field = "expiryYear"
	FieldSecurityCode Field = "securityCode"
)

// Input caps.
const (
	MaxHolderName   = 30
	MaxCardNumber   = 16
	MaxExpiryMonth  = 2
	MaxExpiryYear   = 2
	MaxSecurityCode = 3
)

// ErrUnknownField is returned when a field name does not map to an input.
var ErrUnknownField = errors.New("unknown field")

// Fields lists the inputs in form order.
func Fields() []Field {
	return []Field{FieldHolderName, FieldCardNumber, FieldExpiryMonth, FieldExpiryYear, FieldSecurityCode}
}

// legacy form names used by the original page
var fieldAliases = map[string]Field{
	"nome":   FieldHolderName,
	"numero": FieldCardNumber,
	"mes":    FieldExpiryMonth,
	"ano":    FieldExpiryYear,
	"cvv":    FieldSecurityCode,
}

// ParseField maps a JSON key or legacy form name to a Field.
func ParseField(name string) (Field, error) {
	n := strings.TrimSpace(name)
	for _, f := range Fields() {
		if strings.EqualFold(n, string(f)) {
			return f, nil
		}
	}
	if f, ok := fieldAliases[strings.ToLower(n)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Alias returns the legacy form name of f, or "" for an unknown field.
func (f Field) Alias() string {
	for alias, ff := range fieldAliases {
		if ff == f {
			return alias
		}
	}
	return ""
}

// MaxLen returns the input cap for f.
func (f Field) MaxLen() int {
	switch f {
	case FieldHolderName:
		return MaxHolderName
	case FieldCardNumber:
		return MaxCardNumber
	case FieldExpiryMonth:
		return MaxExpiryMonth
	case FieldExpiryYear:
		return MaxExpiryYear
	case FieldSecurityCode:
		return MaxSecurityCode
	default:
		return 0
	}
}

// Numeric reports whether f only accepts digits.
func (f Field) Numeric() bool {
	return f != FieldHolderName && f.MaxLen() > 0
}

// Label is the caption shown next to the input.
func (f Field) Label() string {
	switch f {
	case FieldHolderName:
		return "Nome"
	case FieldCardNumber:
		return "Número do Cartão"
	case FieldExpiryMonth:
		return "Mês"
	case FieldExpiryYear:
		return "Ano"
	case FieldSecurityCode:
		return "CVV"
	default:
		return string(f)
	}
}

// Placeholder is the hint shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case FieldHolderName:
		return "João Silva"
	case FieldCardNumber:
		return "0000 0000 0000 0000"
	case FieldExpiryMonth:
		return "MM"
	case FieldExpiryYear:
		return "AA"
	case FieldSecurityCode:
		return "•••"
	default:
		return ""
	}
}
