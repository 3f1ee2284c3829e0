package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cardcheck/internal/card"
)

// App hosts one card widget on the bubbletea loop.
type App struct {
	widget *card.Widget
	logger *slog.Logger
	keys   keyMap
	snap   card.Snapshot
	focus  focusTarget
	notice string
	width  int
	height int
}

// focusTarget indexes card.Fields(); focusSubmit is the Checar button,
// one past the last field.
type focusTarget int

var focusSubmit = focusTarget(len(card.Fields()))

// New returns the terminal front-end for w. A nil logger discards.
func New(w *card.Widget, logger *slog.Logger) *App {
	if w == nil {
		w = card.NewWidget()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &App{
		widget: w,
		logger: logger,
		keys:   newKeyMap(),
		snap:   w.Snapshot(),
	}
	w.OnChange(a.render)
	return a
}

// render receives every widget change and keeps the snapshot View draws.
func (a *App) render(s card.Snapshot) { a.snap = s }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQ) {
			return a, tea.Quit
		}
		if a.notice != "" {
			return a.handleNoticeKey(m)
		}
		if a.snap.Phase == card.PhaseConfirmed {
			return a.handleModalKey(m)
		}
		return a.handleFormKey(m)
	}
	return a, nil
}

func (a *App) handleNoticeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Dismiss):
		a.notice = ""
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Dismiss):
		a.widget.Dismiss()
		a.logger.Debug("modal dismissed")
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Next):
		a.moveFocus(1)
		return a, nil
	case key.Matches(m, a.keys.Prev):
		a.moveFocus(-1)
		return a, nil
	case key.Matches(m, a.keys.Submit):
		a.submit()
		return a, nil
	case key.Matches(m, a.keys.Enter):
		if a.focus == focusSubmit {
			a.submit()
		} else {
			a.moveFocus(1)
		}
		return a, nil
	}

	f, ok := a.focusedField()
	if !ok {
		return a, nil
	}
	switch m.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		a.widget.Backspace(f)
	case tea.KeySpace:
		a.typeInto(f, " ")
	case tea.KeyRunes:
		a.typeInto(f, string(m.Runes))
	}
	return a, nil
}

func (a *App) typeInto(f card.Field, s string) {
	if !a.widget.Append(f, s) {
		a.logger.Debug("edit rejected", "field", string(f))
	}
}

func (a *App) submit() {
	if err := a.widget.Submit(); err != nil {
		a.notice = err.Error()
		a.logger.Info("check failed", "kind", string(card.KindOf(err)))
		return
	}
	a.logger.Info("check passed", "protocol", a.snap.Protocol)
}

func (a *App) moveFocus(delta int) {
	n := int(focusSubmit) + 1
	a.focus = focusTarget((int(a.focus) + delta + n) % n)
}

func (a *App) focusedField() (card.Field, bool) {
	fields := card.Fields()
	if int(a.focus) < 0 || int(a.focus) >= len(fields) {
		return "", false
	}
	return fields[a.focus], true
}
