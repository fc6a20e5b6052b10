package components

import (
	"fmt"
	"strings"

	"github.com/emiliopalmerini/housefit/internal/pkg/tui/theme"
)

// Progress renders epochs done out of a total as a bar.
type Progress struct {
	Total   int
	Current int
	Width   int
	styles  *theme.Styles
}

// NewProgress creates a progress bar of width cells.
func NewProgress(total, width int) Progress {
	return Progress{
		Total:  total,
		Width:  width,
		styles: theme.Default(),
	}
}

// SetCurrent updates the completed count, clamped to Total.
func (p *Progress) SetCurrent(current int) {
	p.Current = min(max(current, 0), p.Total)
}

// Filled is the number of bar cells drawn as done.
func (p Progress) Filled() int {
	if p.Total <= 0 {
		return 0
	}
	return p.Current * p.Width / p.Total
}

// View renders the bar and the counter.
func (p Progress) View() string {
	filled := p.Filled()
	var b strings.Builder
	b.WriteString(p.styles.ProgressActive.Render(strings.Repeat("█", filled)))
	b.WriteString(p.styles.ProgressInactive.Render(strings.Repeat("░", p.Width-filled)))
	b.WriteString(fmt.Sprintf(" %d/%d", p.Current, p.Total))
	return b.String()
}
