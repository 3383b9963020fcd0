package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/pablasso/fieldplan/internal/tui/styles"
)

// RenderSummary draws the four status count boxes, right-aligned in width.
func RenderSummary(st styles.Styles, s plan.Summary, width int) string {
	boxes := []string{
		countBox(st.Total, "Total", s.Total),
		countBox(st.Completed, "Completed", s.Completed),
		countBox(st.Upcoming, "Upcoming", s.Upcoming),
		countBox(st.InProgress, "In Progress", s.InProgress),
	}

	joined := boxes[0]
	for _, b := range boxes[1:] {
		joined = lipgloss.JoinHorizontal(lipgloss.Top, joined, " ", b)
	}

	if width <= lipgloss.Width(joined) {
		return joined
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, joined)
}

func countBox(style lipgloss.Style, label string, value int) string {
	return style.Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(value)),
		label,
	))
}
