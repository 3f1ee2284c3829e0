package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedID() string { return "proto-1" }

func TestWidgetValidSubmitOpensModal(t *testing.T) {
	w := NewWidget(WithState(validForm()), WithIDFunc(fixedID))
	require.Equal(t, PhaseEditing, w.Phase())
	require.False(t, w.Flags().ModalOpen)

	require.NoError(t, w.Submit())
	require.Equal(t, Flags{Valid: true, ModalOpen: true}, w.Flags())
	require.Equal(t, PhaseConfirmed, w.Phase())
	require.Equal(t, "proto-1", w.Protocol())

	w.Dismiss()
	require.Equal(t, PhaseEditing, w.Phase())
	require.False(t, w.Flags().ModalOpen)
	require.True(t, w.Flags().Valid)
	require.Empty(t, w.Protocol())
	require.Equal(t, validForm(), w.State())
}

func TestWidgetShortNumberKeepsModalClosed(t *testing.T) {
	s := validForm()
	s.CardNumber = strings.Repeat("1", 15)
	w := NewWidget(WithState(s))

	err := w.Submit()
	require.ErrorIs(t, err, ErrInvalidNumber)
	require.Equal(t, KindInvalidNumber, KindOf(err))
	require.Equal(t, Flags{}, w.Flags())
	require.Equal(t, PhaseEditing, w.Phase())
}

func TestWidgetCycleRepeats(t *testing.T) {
	n := 0
	w := NewWidget(WithState(validForm()), WithIDFunc(func() string {
		n++
		return strings.Repeat("x", n)
	}))
	for i := 1; i <= 3; i++ {
		require.NoError(t, w.Submit())
		require.Equal(t, strings.Repeat("x", i), w.Protocol())
		w.Dismiss()
	}
	require.Equal(t, 3, n)
}

func TestWidgetEditIsShallowMerge(t *testing.T) {
	w := NewWidget(WithState(validForm()))
	require.True(t, w.Edit(FieldCardNumber, "4111 1111 1111 1111"))

	want := validForm()
	want.CardNumber = "4111111111111111"
	require.Equal(t, want, w.State())
}

func TestWidgetNotifiesOnChange(t *testing.T) {
	w := NewWidget(WithIDFunc(fixedID))
	var got []Snapshot
	w.OnChange(func(s Snapshot) { got = append(got, s) })

	w.Append(FieldCardNumber, "1")
	w.Append(FieldCardNumber, "x") // masked away, no change
	w.Append(FieldExpiryMonth, "1")
	w.Append(FieldExpiryMonth, "3") // rejected
	require.Len(t, got, 2)
	require.Equal(t, "1••• •••• •••• ••••", got[0].Preview.Number)
	require.Equal(t, "1/••", got[1].Preview.Expiry)

	require.Error(t, w.Submit())
	require.Len(t, got, 3)
	require.Equal(t, PhaseEditing, got[2].Phase)

	for _, f := range Fields() {
		w.Edit(f, validForm().Get(f))
	}
	before := len(got)
	require.NoError(t, w.Submit())
	last := got[len(got)-1]
	require.Equal(t, before+1, len(got))
	require.Equal(t, PhaseConfirmed, last.Phase)
	require.Equal(t, "proto-1", last.Protocol)

	w.Dismiss()
	require.Equal(t, PhaseEditing, got[len(got)-1].Phase)
}

func TestWithStateMasksInput(t *testing.T) {
	w := NewWidget(WithState(FormState{
		HolderName:   "ana",
		CardNumber:   "12ab34",
		ExpiryMonth:  "13",
		ExpiryYear:   "2031",
		SecurityCode: "9876",
	}))
	require.Equal(t, FormState{
		HolderName:   "ana",
		CardNumber:   "1234",
		ExpiryYear:   "20",
		SecurityCode: "987",
	}, w.State())
}

func TestBackspace(t *testing.T) {
	w := NewWidget()
	require.False(t, w.Backspace(FieldHolderName))
	w.Append(FieldHolderName, "Zé")
	require.True(t, w.Backspace(FieldHolderName))
	require.Equal(t, "Z", w.State().HolderName)
}
