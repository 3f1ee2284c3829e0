package card

import "errors"

// Kind names the rule a form failed.
type Kind string

const (
	KindMissingField  Kind = "MissingField"
	KindInvalidNumber Kind = "InvalidNumber"
	KindInvalidExpiry Kind = "InvalidExpiry"
	KindInvalidCode   Kind = "InvalidCode"
)

var (
	ErrMissingField  = errors.New("please fill in all fields.")
	ErrInvalidNumber = errors.New("card number must have 16 digits.")
	ErrInvalidExpiry = errors.New("invalid expiry.")
	ErrInvalidCode   = errors.New("CVV must have 3 digits.")
)

// ValidationError reports the first rule a form violated.
type ValidationError struct {
	Kind    Kind
	Message string
	err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.err }

func fail(kind Kind, err error) *ValidationError {
	return &ValidationError{Kind: kind, Message: err.Error(), err: err}
}

// Validate applies the shape rules in order and returns the first failure,
// or nil when the form may be confirmed. It only counts characters; it
// says nothing about whether the card exists.
func Validate(s FormState) error {
	if s.HolderName == "" || s.CardNumber == "" || s.ExpiryMonth == "" || s.ExpiryYear == "" || s.SecurityCode == "" {
		return fail(KindMissingField, ErrMissingField)
	}
	if len(s.CardNumber) != MaxCardNumber {
		return fail(KindInvalidNumber, ErrInvalidNumber)
	}
	if len(s.ExpiryMonth) != MaxExpiryMonth || len(s.ExpiryYear) != MaxExpiryYear {
		return fail(KindInvalidExpiry, ErrInvalidExpiry)
	}
	if len(s.SecurityCode) != MaxSecurityCode {
		return fail(KindInvalidCode, ErrInvalidCode)
	}
	return nil
}

// KindOf extracts the failure kind from an error returned by Validate.
// It returns "" for nil and for errors that did not come from Validate.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
