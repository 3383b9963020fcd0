package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/fieldplan/internal/layout"
	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/pablasso/fieldplan/internal/tui/components"
	"github.com/pablasso/fieldplan/internal/tui/msgs"
	"github.com/pablasso/fieldplan/internal/tui/styles"
)

// LoadingText is shown next to the spinner while the fetch is outstanding.
const LoadingText = "Carregando tarefas..."

// workflowState represents the current state of the workflow view.
type workflowState int

const (
	stateLoading workflowState = iota
	stateLoaded
	stateFailed
)

// header: title, summary (2 lines), tabs, blank; footer: status bar.
const workflowChromeLines = 6

// WorkflowModel renders the task workflow diagram with its summary and tabs.
type WorkflowModel struct {
	st       styles.Styles
	state    workflowState
	spinner  spinner.Model
	tasks    []plan.Task
	tab      plan.Tab
	selected int // -1 when no task is focused
	errMsg   string
	demo     bool

	diagram   components.ScrollViewport
	taskLines map[int][2]int // task index -> first/last diagram line

	width  int
	height int
}

// NewWorkflowModel creates a WorkflowModel in the loading state.
func NewWorkflowModel(st styles.Styles, demo bool) WorkflowModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.Selected

	return WorkflowModel{
		st:       st,
		state:    stateLoading,
		spinner:  s,
		tab:      plan.TabAll,
		selected: -1,
		demo:     demo,
		diagram:  components.NewScrollViewport(st, 0, 0),
	}
}

// Init implements tea.Model.
func (m WorkflowModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetTasks replaces the task sequence and leaves the loading state. The
// first task is focused when there is one.
func (m *WorkflowModel) SetTasks(tasks []plan.Task) {
	m.tasks = tasks
	m.state = stateLoaded
	m.errMsg = ""
	m.selected = -1
	if len(tasks) > 0 {
		m.selected = 0
	}
	m.refresh()
}

// SetError switches to the failed state with a user-facing message.
func (m *WorkflowModel) SetError(message string) {
	m.state = stateFailed
	m.errMsg = message
}

// SetSize updates the model dimensions.
func (m *WorkflowModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.diagram.SetSize(width, max(height-workflowChromeLines, 3))
	m.refresh()
}

// Update implements tea.Model.
func (m WorkflowModel) Update(msg tea.Msg) (WorkflowModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.state != stateLoaded {
			return m, nil
		}
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.state == stateLoaded {
			var cmd tea.Cmd
			m.diagram, cmd = m.diagram.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m WorkflowModel) handleKeyPress(msg tea.KeyMsg) (WorkflowModel, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.tab = m.tab.Next()
		m.refresh()
		return m, nil
	case "shift+tab":
		m.tab = m.tab.Prev()
		m.refresh()
		return m, nil
	case "right", "l":
		m.moveSelection(1)
		return m, nil
	case "left", "h":
		m.moveSelection(-1)
		return m, nil
	case "enter":
		if m.selected < 0 || m.selected >= len(m.tasks) {
			return m, nil
		}
		task := m.tasks[m.selected]
		return m, func() tea.Msg { return msgs.OpenTaskMsg{Task: task} }
	case "up", "k", "down", "j", "pgup", "pgdown", "ctrl+u", "ctrl+d", "home", "g", "end", "G":
		var cmd tea.Cmd
		m.diagram, cmd = m.diagram.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *WorkflowModel) moveSelection(delta int) {
	if len(m.tasks) == 0 {
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(m.tasks)-1)
	m.refresh()
	if span, ok := m.taskLines[m.selected]; ok {
		m.diagram.EnsureVisible(span[0], span[1], false)
	}
}

// refresh rebuilds the diagram lines from the current tasks, tab, selection
// and width.
func (m *WorkflowModel) refresh() {
	if m.state != stateLoaded || m.width == 0 {
		return
	}
	lines, taskLines := renderDiagram(m.st, m.tasks, m.tab, m.selected, m.diagram.ContentWidth())
	m.taskLines = taskLines
	m.diagram.SetLines(lines)
}

// View implements tea.Model.
func (m WorkflowModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	switch m.state {
	case stateLoading:
		return m.renderCentered(m.spinner.View()+" "+LoadingText, []string{"q Sair"})
	case stateFailed:
		return m.renderCentered(m.st.Error.Render(m.errMsg), []string{"q Sair"})
	}
	return m.renderLoaded()
}

func (m WorkflowModel) renderCentered(line string, statusItems []string) string {
	var b strings.Builder

	available := m.height - 1
	top := max((available-1)/2, 0)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line))
	b.WriteString(strings.Repeat("\n", max(available-top, 1)))
	b.WriteString(components.NewStatusBar(m.st).Render(m.width, m.statusItems(statusItems)))

	return b.String()
}

func (m WorkflowModel) renderLoaded() string {
	var b strings.Builder

	summary := plan.Aggregate(m.tasks)
	title := m.st.Title.Render("Fluxo de Tarefas")
	progress := components.NewProgress(summary.Completed, summary.Total, 10).WithLabel(plan.StatusCompleted.Label()).View()
	header := title
	switch {
	case len(m.tasks) == 0:
		header = title + "   " + m.st.Subtle.Render("Nenhuma tarefa encontrada.")
	case progress != "":
		header = title + "   " + m.st.Subtle.Render(progress)
	}
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(components.RenderSummary(m.st, summary, m.width))
	b.WriteString("\n")
	b.WriteString(components.RenderTabs(m.st, m.tab))
	b.WriteString("\n\n")

	b.WriteString(m.diagram.View())
	b.WriteString("\n")

	items := []string{"Tab Sensor", "←→ Tarefa", "Enter Detalhes", "↑↓ Rolar", "q Sair"}
	b.WriteString(components.NewStatusBar(m.st).Render(m.width, m.statusItems(items)))

	return b.String()
}

func (m WorkflowModel) statusItems(items []string) []string {
	if m.demo {
		return append([]string{"[DEMO]"}, items...)
	}
	return items
}

// Tasks returns the current task sequence.
func (m WorkflowModel) Tasks() []plan.Task {
	return m.tasks
}

// Tab returns the active tab.
func (m WorkflowModel) Tab() plan.Tab {
	return m.tab
}

// Selected returns the focused task index, or -1.
func (m WorkflowModel) Selected() int {
	return m.selected
}

// Loading reports whether the fetch is still outstanding.
func (m WorkflowModel) Loading() bool {
	return m.state == stateLoading
}

// Failed reports whether the fetch failed.
func (m WorkflowModel) Failed() bool {
	return m.state == stateFailed
}

// renderDiagram draws the layout rows, scaling diagram X coordinates to
// width. It returns the lines and the line span of every task node.
func renderDiagram(st styles.Styles, tasks []plan.Task, tab plan.Tab, selected, width int) ([]string, map[int][2]int) {
	taskLines := make(map[int][2]int, len(tasks))
	if width <= 0 {
		return nil, taskLines
	}

	var lines []string
	for _, row := range layout.Rows(layout.Build(tasks, tab)) {
		blocks := make([]string, len(row))
		lefts := make([]int, len(row))
		for i, node := range row {
			blocks[i] = renderNode(st, node, selected, width)
			center := node.Position.X * width / layout.Width
			lefts[i] = center - lipgloss.Width(blocks[i])/2
		}

		rowLines := placeRow(blocks, lefts, width)
		for i, node := range row {
			if node.Kind == layout.KindTask {
				h := lipgloss.Height(blocks[i])
				taskLines[node.Payload.TaskIndex] = [2]int{len(lines), len(lines) + h - 1}
			}
		}
		lines = append(lines, rowLines...)
		lines = append(lines, "")
	}

	return lines, taskLines
}

// placeRow lays blocks side by side starting at the given columns. A block
// that would overlap its left neighbour is pushed right by one column gap.
func placeRow(blocks []string, lefts []int, width int) []string {
	height := 0
	for _, b := range blocks {
		height = max(height, lipgloss.Height(b))
	}

	split := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	cursor := 0
	for i, b := range blocks {
		split[i] = strings.Split(b, "\n")
		widths[i] = lipgloss.Width(b)
		if i > 0 {
			lefts[i] = max(lefts[i], cursor+1)
		}
		lefts[i] = max(lefts[i], 0)
		cursor = lefts[i] + widths[i]
	}

	out := make([]string, height)
	for line := 0; line < height; line++ {
		var sb strings.Builder
		col := 0
		for i := range blocks {
			if lefts[i] > col {
				sb.WriteString(strings.Repeat(" ", lefts[i]-col))
				col = lefts[i]
			}
			seg := ""
			if line < len(split[i]) {
				seg = split[i][line]
			}
			sb.WriteString(seg)
			if pad := widths[i] - ansi.StringWidth(seg); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
			col += widths[i]
		}
		out[line] = ansi.Truncate(strings.TrimRight(sb.String(), " "), width, "")
	}
	return out
}

func renderNode(st styles.Styles, node layout.Node, selected, width int) string {
	p := node.Payload
	switch node.Kind {
	case layout.KindArrow:
		if p.Direction == layout.DirectionDown {
			return st.Arrow.Render("↓")
		}
		return st.Arrow.Render("→")

	case layout.KindAlexa:
		return st.Alexa.Render("◉ " + p.Caption)

	case layout.KindSensor:
		style := st.Box
		if p.Highlighted {
			style = st.Highlight
		}
		return style.Width(boxWidth(width, 5, 10)).Render(p.Title + "\n" + st.Subtle.Render(p.Caption))

	case layout.KindTask:
		style := st.Box
		if p.TaskIndex == selected {
			style = st.SelectedBox
		}
		body := iconGlyph(p.Task.Icon) + " " + st.Title.Render(p.Task.Title) + "\n" +
			p.Task.Description + "\n" +
			st.Status(p.Task.Status).Render(p.Task.Status.Label())
		return style.Width(boxWidth(width, 3, 18)).Render(body)

	case layout.KindStart:
		return st.Box.Render(st.Title.Render(p.Title))

	default:
		return st.Box.Width(boxWidth(width, 4, 14)).Render(p.Title + "\n" + st.Subtle.Render(p.Caption))
	}
}

// boxWidth splits width into per-row slots, leaving room for borders and
// gaps, with a floor of minimum.
func boxWidth(width, perRow, minimum int) int {
	return max(width/perRow-6, minimum)
}

func iconGlyph(icon plan.Icon) string {
	switch icon {
	case plan.IconCloud:
		return "☁"
	case plan.IconBeaker:
		return "⚗"
	case plan.IconWrench:
		return "⚒"
	case plan.IconSun:
		return "☀"
	case plan.IconArrowPath:
		return "↻"
	default:
		return "•"
	}
}
