package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/pablasso/fieldplan/internal/tui/components"
	"github.com/pablasso/fieldplan/internal/tui/msgs"
	"github.com/pablasso/fieldplan/internal/tui/styles"
)

// TaskDetailModel shows one task's description, recommendation and status.
type TaskDetailModel struct {
	st      styles.Styles
	task    plan.Task
	content components.ScrollViewport

	width  int
	height int
}

// NewTaskDetailModel creates a detail panel for task.
func NewTaskDetailModel(st styles.Styles, task plan.Task) TaskDetailModel {
	return TaskDetailModel{
		st:      st,
		task:    task,
		content: components.NewScrollViewport(st, 0, 0),
	}
}

// Init implements tea.Model.
func (m TaskDetailModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the model dimensions and re-renders the markdown for the
// new wrap width.
func (m *TaskDetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	// title + blank + status bar
	m.content.SetSize(width, max(height-3, 1))
	m.content.SetLines(strings.Split(renderTaskMarkdown(m.st.Theme, m.task, m.content.ContentWidth()), "\n"))
}

// Update implements tea.Model.
func (m TaskDetailModel) Update(msg tea.Msg) (TaskDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "q":
			return m, func() tea.Msg { return msgs.CloseTaskMsg{} }
		}
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m TaskDetailModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	title := m.st.Title.Render(fmt.Sprintf("%s %s", iconGlyph(m.task.Icon), m.task.Title))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")
	b.WriteString(components.NewStatusBar(m.st).Render(m.width, []string{"Esc/q Voltar", "↑↓ Rolar", "Ctrl+C Sair"}))

	return b.String()
}

// Task returns the task being shown.
func (m TaskDetailModel) Task() plan.Task {
	return m.task
}

// TaskMarkdown formats a task as markdown for the detail panel.
func TaskMarkdown(task plan.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Status:** %s\n\n", task.Status.Label())
	b.WriteString(task.Description)
	b.WriteString("\n\n## Recomendação\n\n")
	for _, r := range task.Recommendations {
		fmt.Fprintf(&b, "> %s\n", r)
	}
	fmt.Fprintf(&b, "\n`%s`\n", task.ID)
	return b.String()
}

// renderTaskMarkdown renders TaskMarkdown with glamour, falling back to the
// raw markdown when the renderer cannot be built.
func renderTaskMarkdown(theme styles.Theme, task plan.Task, width int) string {
	md := TaskMarkdown(task)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(string(theme)),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
