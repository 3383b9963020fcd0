package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Progress renders a completion bar like: Concluído ■■■■□□□□ 50%
type Progress struct {
	Label   string
	Current int
	Total   int
	Width   int // character width of the bar portion
}

// NewProgress creates a new Progress instance.
func NewProgress(current, total, width int) Progress {
	return Progress{
		Current: current,
		Total:   total,
		Width:   width,
	}
}

// WithLabel returns a copy of p that prefixes the bar with label.
func (p Progress) WithLabel(label string) Progress {
	p.Label = label
	return p
}

// View returns the rendered bar. It is empty when there is nothing to measure.
func (p Progress) View() string {
	if p.Total <= 0 || p.Width <= 0 {
		return ""
	}

	current := min(max(p.Current, 0), p.Total)
	percent := (current * 100) / p.Total
	filled := (current * p.Width) / p.Total

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, p.Width-filled)
	if p.Label != "" {
		return fmt.Sprintf("%s %s %d%%", p.Label, bar, percent)
	}
	return fmt.Sprintf("%s %d%%", bar, percent)
}
