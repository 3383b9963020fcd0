package components

import (
	"strings"

	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/pablasso/fieldplan/internal/tui/styles"
)

// RenderTabs draws the sensor tab row with the active tab bracketed.
func RenderTabs(st styles.Styles, active plan.Tab) string {
	tabs := plan.Tabs()
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab == active {
			parts = append(parts, st.Selected.Render("["+tab.Label()+"]"))
			continue
		}
		parts = append(parts, st.Subtle.Render(" "+tab.Label()+" "))
	}
	return strings.Join(parts, " ")
}
