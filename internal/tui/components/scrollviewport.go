package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/fieldplan/internal/tui/styles"
)

// ScrollViewport wraps bubbles/viewport.Model with a scrollbar column and
// helpers to keep a given line in view.
type ScrollViewport struct {
	viewport viewport.Model
	st       styles.Styles
	lines    []string
	width    int // total width including scrollbar
	height   int
}

// NewScrollViewport creates a ScrollViewport. The width includes 1 column for
// the scrollbar; the content area is width-1.
func NewScrollViewport(st styles.Styles, width, height int) ScrollViewport {
	vp := viewport.New(max(width-1, 0), max(height, 0))
	vp.SetContent("")

	return ScrollViewport{
		viewport: vp,
		st:       st,
		width:    width,
		height:   height,
	}
}

// SetSize updates the viewport dimensions. Width includes the scrollbar column.
func (s *ScrollViewport) SetSize(width, height int) {
	if s.width == width && s.height == height {
		return
	}

	s.width = width
	s.height = height
	s.viewport.Width = max(width-1, 0)
	s.viewport.Height = max(height, 0)

	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	// Clamp y-offset after resize.
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// SetLines replaces the content, preserving the scroll offset where possible.
func (s *ScrollViewport) SetLines(lines []string) {
	s.lines = make([]string, len(lines))
	copy(s.lines, lines)

	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// Update handles scrolling keys and mouse wheel events.
func (s *ScrollViewport) Update(msg tea.Msg) (ScrollViewport, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "home", "g":
			s.viewport.GotoTop()
			return *s, nil
		case "end", "G":
			s.viewport.GotoBottom()
			return *s, nil
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return *s, cmd
}

// View renders the visible lines with the scrollbar on the right.
func (s ScrollViewport) View() string {
	if s.height <= 0 {
		return ""
	}

	contentLines := strings.Split(s.viewport.View(), "\n")
	scrollbarLines := strings.Split(RenderScrollbar(s.st, s.height, len(s.lines), s.viewport.YOffset), "\n")
	contentWidth := s.ContentWidth()

	var b strings.Builder
	for i := 0; i < s.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}

		cl := ""
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		b.WriteString(cl)
		if pad := contentWidth - ansi.StringWidth(cl); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if i < len(scrollbarLines) {
			b.WriteString(scrollbarLines[i])
		}
	}

	return b.String()
}

// YOffset returns the index of the first visible line.
func (s ScrollViewport) YOffset() int {
	return s.viewport.YOffset
}

// LineCount returns the number of content lines.
func (s ScrollViewport) LineCount() int {
	return len(s.lines)
}

// AtBottom returns true if the viewport is scrolled to the bottom.
func (s ScrollViewport) AtBottom() bool {
	return s.viewport.AtBottom()
}

// ContentWidth returns the width available for content (total width minus scrollbar).
func (s ScrollViewport) ContentWidth() int {
	return max(s.width-1, 0)
}

// EnsureVisible scrolls so lines first..last are visible. If the span is
// taller than the viewport, its top is shown. If center is true, the span is
// centered instead of scrolled the minimum amount.
func (s *ScrollViewport) EnsureVisible(first, last int, center bool) {
	if first < 0 || first >= len(s.lines) {
		return
	}
	last = min(max(last, first), len(s.lines)-1)

	if center {
		mid := (first + last) / 2
		s.viewport.SetYOffset(max(mid-s.height/2, 0))
		return
	}

	top := s.viewport.YOffset
	bottom := top + s.height - 1
	switch {
	case first < top || last-first+1 > s.height:
		s.viewport.SetYOffset(first)
	case last > bottom:
		s.viewport.SetYOffset(last - s.height + 1)
	}
}
