package components

import (
	"strings"

	"github.com/emiliopalmerini/housefit/internal/pkg/tui/theme"
)

// KeyBinding is one key shown in the help bar.
type KeyBinding struct {
	Key  string
	Desc string
}

// HelpBar renders key bindings on one line.
type HelpBar struct {
	Bindings []KeyBinding
	styles   *theme.Styles
}

// NewHelpBar creates a help bar
func NewHelpBar(bindings ...KeyBinding) HelpBar {
	return HelpBar{
		Bindings: bindings,
		styles:   theme.Default(),
	}
}

// View renders the help bar
func (h HelpBar) View() string {
	parts := make([]string, 0, len(h.Bindings))
	for _, kb := range h.Bindings {
		parts = append(parts, h.styles.HelpKey.Render(kb.Key)+h.styles.Muted.Render(":"+kb.Desc))
	}
	return strings.Join(parts, " ")
}
