// Package styles defines the lipgloss palettes for the TUI. Every renderer
// receives a Theme explicitly; nothing here reads terminal state.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/fieldplan/internal/plan"
)

// Theme selects a palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates and normalizes a theme name. Empty selects light.
func ParseTheme(value string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(ThemeLight):
		return ThemeLight, nil
	case string(ThemeDark):
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("invalid theme %q (valid: light, dark)", value)
	}
}

type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	text      lipgloss.Color
	border    lipgloss.Color
	success   lipgloss.Color
	info      lipgloss.Color
	warning   lipgloss.Color
	accent    lipgloss.Color
	error     lipgloss.Color
	alexa     lipgloss.Color

	totalBg      lipgloss.Color
	completedBg  lipgloss.Color
	upcomingBg   lipgloss.Color
	inProgressBg lipgloss.Color
	recommendBg  lipgloss.Color
}

var palettes = map[Theme]palette{
	ThemeLight: {
		primary:   lipgloss.Color("#2563EB"),
		secondary: lipgloss.Color("#4B5563"),
		text:      lipgloss.Color("#1F2937"),
		border:    lipgloss.Color("#D1D5DB"),
		success:   lipgloss.Color("#22C55E"), // green-500
		info:      lipgloss.Color("#3B82F6"), // blue-500
		warning:   lipgloss.Color("#EAB308"), // yellow-500
		accent:    lipgloss.Color("#A855F7"),
		error:     lipgloss.Color("#EF4444"),
		alexa:     lipgloss.Color("#00CAFF"),

		totalBg:      lipgloss.Color("#DBEAFE"),
		completedBg:  lipgloss.Color("#DCFCE7"),
		upcomingBg:   lipgloss.Color("#FEF9C3"),
		inProgressBg: lipgloss.Color("#F3E8FF"),
		recommendBg:  lipgloss.Color("#DBEAFE"),
	},
	ThemeDark: {
		primary:   lipgloss.Color("#60A5FA"),
		secondary: lipgloss.Color("#9CA3AF"),
		text:      lipgloss.Color("#E5E7EB"),
		border:    lipgloss.Color("#4B5563"),
		success:   lipgloss.Color("#4ADE80"), // green-400
		info:      lipgloss.Color("#60A5FA"), // blue-400
		warning:   lipgloss.Color("#FACC15"), // yellow-400
		accent:    lipgloss.Color("#C084FC"),
		error:     lipgloss.Color("#F87171"),
		alexa:     lipgloss.Color("#00CAFF"),

		totalBg:      lipgloss.Color("#1E40AF"),
		completedBg:  lipgloss.Color("#166534"),
		upcomingBg:   lipgloss.Color("#854D0E"),
		inProgressBg: lipgloss.Color("#6B21A8"),
		recommendBg:  lipgloss.Color("#1E40AF"),
	},
}

// Styles is the resolved style set for one theme.
type Styles struct {
	Theme Theme

	// Title for headers
	Title lipgloss.Style
	// Subtle for hints/help text
	Subtle lipgloss.Style
	// Selected for the focused task or tab
	Selected  lipgloss.Style
	StatusBar lipgloss.Style
	Box       lipgloss.Style
	// SelectedBox outlines the focused task node
	SelectedBox lipgloss.Style
	Highlight   lipgloss.Style
	Alexa       lipgloss.Style
	Arrow       lipgloss.Style
	Recommend   lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style

	Total      lipgloss.Style
	Completed  lipgloss.Style
	Upcoming   lipgloss.Style
	InProgress lipgloss.Style

	p palette
}

// New resolves the style set for theme. Unknown themes fall back to light.
func New(theme Theme) Styles {
	p, ok := palettes[theme]
	if !ok {
		theme = ThemeLight
		p = palettes[ThemeLight]
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Foreground(p.text).
		Padding(0, 1)

	countBox := func(bg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			Background(bg).
			Foreground(p.text).
			Padding(0, 2).
			Align(lipgloss.Center)
	}

	return Styles{
		Theme: theme,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		Subtle: lipgloss.NewStyle().
			Foreground(p.secondary),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.secondary),
		Box:         box,
		SelectedBox: box.BorderForeground(p.primary).BorderStyle(lipgloss.ThickBorder()),
		Highlight:   box.BorderForeground(p.success),
		Alexa: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.alexa).
			Foreground(p.alexa).
			Padding(0, 1),
		Arrow: lipgloss.NewStyle().
			Foreground(p.secondary),
		Recommend: lipgloss.NewStyle().
			Background(p.recommendBg).
			Foreground(p.text).
			Padding(0, 1),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
		Error: lipgloss.NewStyle().
			Foreground(p.error),

		Total:      countBox(p.totalBg),
		Completed:  countBox(p.completedBg),
		Upcoming:   countBox(p.upcomingBg),
		InProgress: countBox(p.inProgressBg),

		p: p,
	}
}

// Status returns the text style for a task status: completed green,
// in progress blue, upcoming yellow.
func (s Styles) Status(status plan.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch status {
	case plan.StatusCompleted:
		return base.Foreground(s.p.success)
	case plan.StatusInProgress:
		return base.Foreground(s.p.info)
	case plan.StatusUpcoming:
		return base.Foreground(s.p.warning)
	default:
		return base.Foreground(s.p.secondary)
	}
}
