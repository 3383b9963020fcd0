package components

import (
	"strings"

	"github.com/pablasso/fieldplan/internal/tui/styles"
)

const statusSeparator = "  |  "

// StatusBar renders a bottom help bar showing contextual help items.
type StatusBar struct {
	st styles.Styles
}

// NewStatusBar creates a StatusBar drawn with the given styles.
func NewStatusBar(st styles.Styles) StatusBar {
	return StatusBar{st: st}
}

// Render returns the status bar string for the given width and items.
// Items are joined with "  |  " and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	if len(items) == 0 {
		return s.st.StatusBar.Width(width).Render("")
	}

	content := strings.Join(items, statusSeparator)

	return s.st.StatusBar.Width(width).Render(content)
}
