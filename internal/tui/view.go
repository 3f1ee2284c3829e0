package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cardcheck/internal/card"
)

func (a *App) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, a.renderCards(), "    ", a.renderForm()),
		"",
		disclaimerStyle.Render(wrap(card.Disclaimer, 2*cardWidth)),
		"",
		a.renderHelp(),
	)
	switch {
	case a.notice != "":
		popup := noticeTitleStyle.Render("Atenção") + "\n\n" + a.notice + "\n\n" + a.renderOverlayHelp()
		return renderPopup(body, popup, colorError, a.width, a.height)
	case a.snap.Phase == card.PhaseConfirmed:
		return renderPopup(body, a.renderModal(), colorSuccess, a.width, a.height)
	}
	return body
}

func (a *App) renderCards() string {
	p := a.snap.Preview
	front := frontStyle.Render(strings.Join([]string{
		captionStyle.Render("🔒"),
		"",
		captionStyle.Render("NÚMERO DO CARTÃO"),
		numberStyle.Render(p.Number),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(cardWidth-14).Render(captionStyle.Render("TITULAR")+"\n"+p.Holder),
			captionStyle.Render("VÁLIDO ATÉ")+"\n"+p.Expiry,
		),
	}, "\n"))
	back := backStyle.Render(strings.Join([]string{
		stripeStyle.Render(" "),
		"",
		cvvStyle.Render(p.CVV),
		lipgloss.NewStyle().Width(cardWidth - 4).Align(lipgloss.Right).Render(captionStyle.Render("CVV")),
	}, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, front, "", back)
}

func (a *App) renderForm() string {
	s := a.snap.State
	fields := card.Fields()
	rows := []string{titleStyle.Render(card.FormTitle), ""}

	rows = append(rows, a.renderInput(fields[0], strings.ToUpper(s.HolderName), 34))
	rows = append(rows, a.renderInput(fields[1], s.CardNumber, 34))
	rows = append(rows, captionStyle.Render(a.snap.Preview.Counter))
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		a.renderInput(fields[2], s.ExpiryMonth, 6), " ",
		a.renderInput(fields[3], s.ExpiryYear, 6), " ",
		a.renderInput(fields[4], s.SecurityCode, 6),
	))
	rows = append(rows, "")

	btn := buttonStyle
	if a.focus == focusSubmit {
		btn = focusedButtonStyle
	}
	rows = append(rows, btn.Render(card.SubmitLabel))
	return strings.Join(rows, "\n")
}

func (a *App) renderInput(f card.Field, value string, width int) string {
	style := inputStyle
	if ff, ok := a.focusedField(); ok && ff == f {
		style = focusedInputStyle
	}
	text := value
	if text == "" {
		text = placeholderStyle.Render(f.Placeholder())
	}
	return labelStyle.Render(f.Label()) + "\n" + style.Width(width).Render(text)
}

func (a *App) renderModal() string {
	lines := []string{
		modalTitleStyle.Render(card.ModalTitle),
		"",
		card.ModalBody,
	}
	if a.snap.Protocol != "" {
		lines = append(lines, "", captionStyle.Render("Protocolo: "+a.snap.Protocol))
	}
	lines = append(lines, "", buttonStyle.Render(card.DismissLabel), "", a.renderOverlayHelp())
	return strings.Join(lines, "\n")
}

func (a *App) renderHelp() string {
	return joinHelp(a.keys.ShortHelp())
}

func (a *App) renderOverlayHelp() string {
	return joinHelp(a.keys.OverlayHelp())
}

func joinHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// wrap breaks s on spaces so no line exceeds width runes.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		if cur.Len() > 0 && len([]rune(cur.String()))+1+len([]rune(w)) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return strings.Join(lines, "\n")
}
