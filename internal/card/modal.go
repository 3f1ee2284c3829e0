package card

// Modal is the confirmation dialog's visibility. The zero value is closed.
type Modal struct {
	open bool
}

// Open shows the dialog.
func (m *Modal) Open() { m.open = true }

// Close hides the dialog.
func (m *Modal) Close() { m.open = false }

// IsOpen reports whether the dialog is showing.
func (m *Modal) IsOpen() bool { return m.open }

// Phase is the widget's position in the Editing/Confirmed cycle.
type Phase string

const (
	PhaseEditing   Phase = "editing"
	PhaseConfirmed Phase = "confirmed"
)

// Copy shown by every surface.
const (
	SubmitLabel  = "Checar"
	DismissLabel = "Fechar"
	FormTitle    = "Verificar Cartão"
	ModalTitle   = "Cartão Verificado! ✓"
	ModalBody    = "Parabéns! Seu cartão não foi clonado até então. Os dados estão corretos e prontos para uso. 🎉 YEY! 🎊"
	Disclaimer   = "Obs: este projeto tem somente tom satírico. Os dados não são armazenados e não são utilizados para qualquer outro fim."
)
