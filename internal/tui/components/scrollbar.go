package components

import (
	"strings"

	"github.com/pablasso/fieldplan/internal/tui/styles"
)

const (
	scrollTrack = "│"
	scrollThumb = "█"
)

// RenderScrollbar renders a 1-column vertical scrollbar for a diagram of
// contentHeight lines seen through viewHeight lines starting at yOffset.
// When everything fits, it renders a blank gutter so the layout width stays
// stable.
func RenderScrollbar(st styles.Styles, viewHeight, contentHeight, yOffset int) string {
	if viewHeight <= 0 {
		return ""
	}

	if contentHeight <= viewHeight {
		return strings.Repeat(" \n", viewHeight-1) + " "
	}

	thumbSize := max(viewHeight*viewHeight/contentHeight, 1)
	maxYOffset := contentHeight - viewHeight
	thumbMaxTop := viewHeight - thumbSize
	thumbTop := min(max(yOffset*thumbMaxTop/maxYOffset, 0), thumbMaxTop)

	track := st.Subtle.Render(scrollTrack)
	thumb := st.Selected.Render(scrollThumb)

	var b strings.Builder
	for i := 0; i < viewHeight; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= thumbTop && i < thumbTop+thumbSize {
			b.WriteString(thumb)
		} else {
			b.WriteString(track)
		}
	}

	return b.String()
}
