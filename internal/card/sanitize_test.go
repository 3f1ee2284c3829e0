package card

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name   string
		field  Field
		raw    string
		prev   string
		want   string
		wantOK bool
	}{
		{"number strips non digits", FieldCardNumber, "1234-5678 abcd", "", "12345678", true},
		{"number truncates", FieldCardNumber, "12345678901234567890", "", "1234567890123456", true},
		{"year truncates", FieldExpiryYear, "2027", "", "20", true},
		{"year has no range", FieldExpiryYear, "99", "", "99", true},
		{"code truncates", FieldSecurityCode, "12a34", "", "123", true},
		{"month accepts 1", FieldExpiryMonth, "1", "", "1", true},
		{"month accepts 12", FieldExpiryMonth, "12", "1", "12", true},
		{"month accepts leading zero", FieldExpiryMonth, "09", "", "09", true},
		{"month accepts empty", FieldExpiryMonth, "", "1", "", true},
		{"month strips to empty", FieldExpiryMonth, "ab", "1", "", true},
		{"month rejects 13", FieldExpiryMonth, "13", "1", "1", false},
		{"month rejects 0", FieldExpiryMonth, "0", "", "", false},
		{"month rejects 00", FieldExpiryMonth, "00", "0", "0", false},
		{"month truncates before range", FieldExpiryMonth, "123", "12", "12", true},
		{"name keeps case", FieldHolderName, "João Silva", "", "João Silva", true},
		{"name caps at 30 runes", FieldHolderName, strings.Repeat("é", 40), "", strings.Repeat("é", 30), true},
		{"unknown field keeps prev", Field("pin"), "1234", "x", "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Sanitize(tt.field, tt.raw, tt.prev)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNumericFieldsStayMaskedUnderRandomTyping(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("0123456789abc -/é\t")
	for _, f := range []Field{FieldCardNumber, FieldExpiryYear, FieldSecurityCode, FieldExpiryMonth} {
		w := NewWidget()
		for i := 0; i < 2000; i++ {
			switch rng.Intn(6) {
			case 0:
				w.Backspace(f)
			case 1:
				// paste
				n := rng.Intn(24)
				var b strings.Builder
				for j := 0; j < n; j++ {
					b.WriteRune(alphabet[rng.Intn(len(alphabet))])
				}
				w.Edit(f, b.String())
			default:
				w.Append(f, string(alphabet[rng.Intn(len(alphabet))]))
			}

			v := w.State().Get(f)
			require.LessOrEqual(t, len(v), f.MaxLen(), "field %s value %q", f, v)
			for _, r := range v {
				require.True(t, r >= '0' && r <= '9', "field %s value %q", f, v)
			}
			if f == FieldExpiryMonth && v != "" {
				n, err := strconv.Atoi(v)
				require.NoError(t, err)
				require.True(t, n >= 1 && n <= 12, "month %q", v)
			}
		}
	}
}

func TestMonthTypedOneThenThreeStaysOne(t *testing.T) {
	w := NewWidget()

	require.True(t, w.Append(FieldExpiryMonth, "1"))
	require.Equal(t, "1", w.State().ExpiryMonth)

	require.False(t, w.Append(FieldExpiryMonth, "3"))
	require.Equal(t, "1", w.State().ExpiryMonth)
}

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{
		"cardNumber":   FieldCardNumber,
		"CARDNUMBER":   FieldCardNumber,
		" numero ":     FieldCardNumber,
		"nome":         FieldHolderName,
		"mes":          FieldExpiryMonth,
		"ano":          FieldExpiryYear,
		"cvv":          FieldSecurityCode,
		"securityCode": FieldSecurityCode,
	} {
		got, err := ParseField(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseField("pin")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestFieldAliasRoundTrips(t *testing.T) {
	want := map[Field]string{
		FieldHolderName:   "nome",
		FieldCardNumber:   "numero",
		FieldExpiryMonth:  "mes",
		FieldExpiryYear:   "ano",
		FieldSecurityCode: "cvv",
	}
	for _, f := range Fields() {
		require.Equal(t, want[f], f.Alias(), f)
		got, err := ParseField(f.Alias())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	require.Empty(t, Field("pin").Alias())
}
