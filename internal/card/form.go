package card

// FormState holds the raw stored value of every input.
type FormState struct {
	HolderName   string `json:"holderName"`
	CardNumber   string `json:"cardNumber"`
	ExpiryMonth  string `json:"expiryMonth"`
	ExpiryYear   string `json:"expiryYear"`
	SecurityCode string `json:"securityCode"`
}

// Get returns the stored value of f.
func (s FormState) Get(f Field) string {
	switch f {
	case FieldHolderName:
		return s.HolderName
	case FieldCardNumber:
		return s.CardNumber
	case FieldExpiryMonth:
		return s.ExpiryMonth
	case FieldExpiryYear:
		return s.ExpiryYear
	case FieldSecurityCode:
		return s.SecurityCode
	default:
		return ""
	}
}

// With returns a copy of s with only f replaced.
func (s FormState) With(f Field, value string) FormState {
	switch f {
	case FieldHolderName:
		s.HolderName = value
	case FieldCardNumber:
		s.CardNumber = value
	case FieldExpiryMonth:
		s.ExpiryMonth = value
	case FieldExpiryYear:
		s.ExpiryYear = value
	case FieldSecurityCode:
		s.SecurityCode = value
	}
	return s
}

// Masked returns s with every field forced through its mask, starting from
// an empty form. Used when state arrives from outside the widget.
func (s FormState) Masked() FormState {
	var out FormState
	for _, f := range Fields() {
		v, _ := Sanitize(f, s.Get(f), "")
		out = out.With(f, v)
	}
	return out
}

// Flags are the two UI booleans. Valid is set on a passing check and
// never read back; it mirrors the original page.
type Flags struct {
	Valid     bool `json:"isValid"`
	ModalOpen bool `json:"isModalOpen"`
}
