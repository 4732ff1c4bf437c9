package style

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")
	Mauve   = lipgloss.Color("#cba6f7")
	Red     = lipgloss.Color("#f38ba8")
	Peach   = lipgloss.Color("#fab387")
	Yellow  = lipgloss.Color("#f9e2af")
	Green   = lipgloss.Color("#a6e3a1")
	Blue    = lipgloss.Color("#89b4fa")

	AccentColor  = Mauve
	SuccessColor = Green
	WarningColor = Peach
	ErrorColor   = Red
	BorderColor  = Surface
)
