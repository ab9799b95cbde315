package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Styles (Catppuccin Mocha)
// ---------------------------------------------------------------------------

var (
	colorBrand   = lipgloss.Color("#89b4fa")
	colorAccent  = lipgloss.Color("#a6e3a1")
	colorText    = lipgloss.Color("#cdd6f4")
	colorSubtext = lipgloss.Color("#a6adc8")
	colorOverlay = lipgloss.Color("#7f849c")
	colorMantle  = lipgloss.Color("#181825")
	colorSurface = lipgloss.Color("#313244")
	colorWarn    = lipgloss.Color("#f9e2af")
	colorDanger  = lipgloss.Color("#f38ba8")

	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface)

	dimStyle = lipgloss.NewStyle().Foreground(colorOverlay)

	priceStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext)

	warnStyle = lipgloss.NewStyle().Foreground(colorWarn)

	dangerStyle = lipgloss.NewStyle().Foreground(colorDanger)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Background(colorMantle).
			Padding(0, 2)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface).
			Padding(0, 1)

	stepActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	stepDoneStyle   = lipgloss.NewStyle().Foreground(colorBrand)
	stepTodoStyle   = lipgloss.NewStyle().Foreground(colorOverlay)

	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext).Bold(true)
)
