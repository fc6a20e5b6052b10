package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the console styles of the train summary and progress view.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style

	Training   lipgloss.Style
	Validation lipgloss.Style

	Card    lipgloss.Style
	HelpKey lipgloss.Style

	ProgressActive   lipgloss.Style
	ProgressInactive lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(LightGray).
			Width(24),

		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Training: lipgloss.NewStyle().
			Foreground(TrainingBlue),

		Validation: lipgloss.NewStyle().
			Foreground(ValidationGreen),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(BrightPurple).
			Bold(true),

		ProgressActive: lipgloss.NewStyle().
			Foreground(Purple),

		ProgressInactive: lipgloss.NewStyle().
			Foreground(DimGray),

		Success: lipgloss.NewStyle().
			Foreground(Success),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Error: lipgloss.NewStyle().
			Foreground(Error),
	}
}
