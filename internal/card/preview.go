package card

import (
	"fmt"
	"strings"
)

// Filler stands in for digits not typed yet. It only ever appears in
// rendered output.
const Filler = "•"

// HolderPlaceholder is shown on the card face while the name is empty.
const HolderPlaceholder = "SEU NOME"

const groupSize = 4

// Preview is the read-only projection of a form onto the card faces.
type Preview struct {
	Number  string `json:"number"`
	Holder  string `json:"holder"`
	Expiry  string `json:"expiry"`
	CVV     string `json:"cvv"`
	Counter string `json:"counter"`
}

// Render projects s onto the card front and back.
func Render(s FormState) Preview {
	return Preview{
		Number:  FormatNumber(s.CardNumber),
		Holder:  FormatHolder(s.HolderName),
		Expiry:  FormatExpiry(s.ExpiryMonth, s.ExpiryYear),
		CVV:     fillEmpty(s.SecurityCode, MaxSecurityCode),
		Counter: fmt.Sprintf("%d/%d dígitos", len(s.CardNumber), MaxCardNumber),
	}
}

// FormatNumber pads number with Filler up to 16 glyphs and groups the
// result in fours.
func FormatNumber(number string) string {
	glyphs := strings.Split(number, "")
	if number == "" {
		glyphs = nil
	}
	for len(glyphs) < MaxCardNumber {
		glyphs = append(glyphs, Filler)
	}
	var b strings.Builder
	for i, g := range glyphs {
		if i > 0 && i%groupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteString(g)
	}
	return b.String()
}

// FormatHolder uppercases the name for display.
func FormatHolder(name string) string {
	if name == "" {
		return HolderPlaceholder
	}
	return strings.ToUpper(name)
}

// FormatExpiry renders MM/YY with fillers for empty parts.
func FormatExpiry(month, year string) string {
	return fillEmpty(month, MaxExpiryMonth) + "/" + fillEmpty(year, MaxExpiryYear)
}

func fillEmpty(v string, n int) string {
	if v == "" {
		return strings.Repeat(Filler, n)
	}
	return v
}
