package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, https://catppuccin.com/palette
const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorSapphire lipgloss.Color = "#74c7ec"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

const (
	colorAccent  = colorBlue
	colorFocus   = colorLavender
	colorMuted   = colorSubtext0
	colorSuccess = colorGreen
	colorError   = colorRed
)

const cardWidth = 36

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	frontStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMauve).
			Background(colorSurface0).
			Foreground(colorText)
	backStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Background(colorSurface1).
			Foreground(colorText)
	stripeStyle = lipgloss.NewStyle().Background(colorCrust).Width(cardWidth - 4)
	cvvStyle    = lipgloss.NewStyle().
			Background(colorText).
			Foreground(colorBase).
			Width(cardWidth - 4).
			Align(lipgloss.Right).
			Padding(0, 1)
	captionStyle = lipgloss.NewStyle().Foreground(colorMuted)
	numberStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)
	focusedInputStyle = inputStyle.BorderForeground(colorFocus)
	placeholderStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)
	labelStyle        = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorSapphire).
			Bold(true).
			Padding(0, 4)
	focusedButtonStyle = buttonStyle.Background(colorAccent).Underline(true)

	disclaimerStyle = lipgloss.NewStyle().Foreground(colorSapphire)

	modalTitleStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	noticeTitleStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
