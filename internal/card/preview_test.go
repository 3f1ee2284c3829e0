package card

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyForm(t *testing.T) {
	want := Preview{
		Number:  "•••• •••• •••• ••••",
		Holder:  "SEU NOME",
		Expiry:  "••/••",
		CVV:     "•••",
		Counter: "0/16 dígitos",
	}
	if diff := cmp.Diff(want, Render(FormState{})); diff != "" {
		t.Fatalf("Render(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFilledForm(t *testing.T) {
	s := FormState{
		HolderName:   "João Silva",
		CardNumber:   "1234567890123456",
		ExpiryMonth:  "9",
		SecurityCode: "321",
	}
	want := Preview{
		Number:  "1234 5678 9012 3456",
		Holder:  "JOÃO SILVA",
		Expiry:  "9/••",
		CVV:     "321",
		Counter: "16/16 dígitos",
	}
	if diff := cmp.Diff(want, Render(s)); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[string]string{
		"":                 "•••• •••• •••• ••••",
		"1":                "1••• •••• •••• ••••",
		"12345678":         "1234 5678 •••• ••••",
		"123456":           "1234 56•• •••• ••••",
		"123456789012345":  "1234 5678 9012 345•",
		"1234567890123456": "1234 5678 9012 3456",
	}
	for in, want := range tests {
		require.Equal(t, want, FormatNumber(in), "FormatNumber(%q)", in)
	}
}

func TestRenderDoesNotTouchState(t *testing.T) {
	s := FormState{HolderName: "ana", CardNumber: "42"}
	before := s
	_ = Render(s)
	require.Equal(t, before, s)
	require.Equal(t, "42", s.CardNumber)
}
