package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the style set the stopwatch screen renders with. Two variants
// exist, chosen from the persisted preference and switchable at runtime.
type Theme struct {
	Title    lipgloss.Style
	Clock    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Running  lipgloss.Style
	Stopped  lipgloss.Style
	Status   lipgloss.Style
	ErrorMsg lipgloss.Style
	Help     lipgloss.Style
	Frame    lipgloss.Style
}

// DarkTheme is the default style set.
func DarkTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#334155")).
			Padding(0, 1),
		Clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F7DC6F")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E2E8F0")),
		Running:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		Stopped:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569")).
			Padding(1, 3),
	}
}

// LightTheme mirrors DarkTheme with colors legible on light terminals.
func LightTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2563EB")).
			Padding(0, 1),
		Clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#B45309")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#475569")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#0F172A")),
		Running:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#047857")),
		Stopped:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B91C1C")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#047857")),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("#B91C1C")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#94A3B8")).
			Padding(1, 3),
	}
}

// ThemeFor picks the style set for the stored preference.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
