package card

import "github.com/google/uuid"

// Snapshot is what a renderer receives after every state change.
type Snapshot struct {
	State    FormState `json:"state"`
	Flags    Flags     `json:"flags"`
	Phase    Phase     `json:"phase"`
	Preview  Preview   `json:"preview"`
	Protocol string    `json:"protocol,omitempty"`
}

// Widget owns one form, its flags and the confirmation modal. It is driven
// from a single event loop and is not safe for concurrent use.
type Widget struct {
	state     FormState
	valid     bool
	modal     Modal
	protocol  string
	newID     func() string
	listeners []func(Snapshot)
}

// Option configures a Widget.
type Option func(*Widget)

// WithState seeds the widget with s after masking it.
func WithState(s FormState) Option {
	return func(w *Widget) { w.state = s.Masked() }
}

// WithIDFunc replaces the protocol id generator.
func WithIDFunc(fn func() string) Option {
	return func(w *Widget) { w.newID = fn }
}

// NewWidget returns an empty widget in the Editing phase.
func NewWidget(opts ...Option) *Widget {
	w := &Widget{newID: uuid.NewString}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// OnChange registers fn to be called after every state change.
func (w *Widget) OnChange(fn func(Snapshot)) {
	w.listeners = append(w.listeners, fn)
}

// Edit sanitizes raw for f and stores it. It reports whether the edit was
// accepted; a rejected edit leaves the field untouched.
func (w *Widget) Edit(f Field, raw string) bool {
	prev := w.state.Get(f)
	v, ok := Sanitize(f, raw, prev)
	if !ok {
		return false
	}
	if v != prev {
		w.state = w.state.With(f, v)
		w.notify()
	}
	return true
}

// Append types s at the end of f.
func (w *Widget) Append(f Field, s string) bool {
	return w.Edit(f, w.state.Get(f)+s)
}

// Backspace removes the last rune of f.
func (w *Widget) Backspace(f Field) bool {
	r := []rune(w.state.Get(f))
	if len(r) == 0 {
		return false
	}
	return w.Edit(f, string(r[:len(r)-1]))
}

// Submit validates the form. On success it marks the form valid, opens the
// modal and stamps a new protocol id; on failure it returns the
// *ValidationError and the widget stays in Editing.
func (w *Widget) Submit() error {
	if err := Validate(w.state); err != nil {
		w.notify()
		return err
	}
	w.valid = true
	w.protocol = w.newID()
	w.modal.Open()
	w.notify()
	return nil
}

// Dismiss closes the confirmation modal.
func (w *Widget) Dismiss() {
	w.modal.Close()
	w.protocol = ""
	w.notify()
}

// State returns the stored form values.
func (w *Widget) State() FormState { return w.state }

// Flags returns the validity and modal flags.
func (w *Widget) Flags() Flags {
	return Flags{Valid: w.valid, ModalOpen: w.modal.IsOpen()}
}

// Phase is Confirmed while the modal is open, Editing otherwise.
func (w *Widget) Phase() Phase {
	if w.modal.IsOpen() {
		return PhaseConfirmed
	}
	return PhaseEditing
}

// Preview renders the current form onto the card faces.
func (w *Widget) Preview() Preview { return Render(w.state) }

// Protocol is the id stamped on the current confirmation, empty while
// editing.
func (w *Widget) Protocol() string { return w.protocol }

// Snapshot returns everything a renderer needs in one value.
func (w *Widget) Snapshot() Snapshot {
	return Snapshot{
		State:    w.state,
		Flags:    w.Flags(),
		Phase:    w.Phase(),
		Preview:  w.Preview(),
		Protocol: w.protocol,
	}
}

func (w *Widget) notify() {
	if len(w.listeners) == 0 {
		return
	}
	snap := w.Snapshot()
	for _, fn := range w.listeners {
		fn(snap)
	}
}
