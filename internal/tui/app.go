package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/fieldplan/internal/fetch"
	"github.com/pablasso/fieldplan/internal/logger"
	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/pablasso/fieldplan/internal/tui/msgs"
	"github.com/pablasso/fieldplan/internal/tui/styles"
	"github.com/pablasso/fieldplan/internal/tui/views"
)

// Minimum terminal dimensions for the diagram to be usable.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// View represents the different screens in the TUI.
type View int

const (
	ViewWorkflow View = iota
	ViewTaskDetail
)

// Model is the main Bubble Tea model. It owns the single fetch issued per
// lifetime and the context that cancels it on quit.
type Model struct {
	currentView View
	width       int
	height      int

	st      styles.Styles
	fetcher fetch.Fetcher
	log     logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	workflow views.WorkflowModel
	detail   views.TaskDetailModel
}

// Run starts the TUI application and blocks until it exits.
func Run(opts Options) error {
	if opts.Fetcher == nil {
		return errors.New("tui: no fetcher configured")
	}

	m := initialModel(context.Background(), opts)
	defer m.cancel()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func initialModel(parent context.Context, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	st := styles.New(opts.Theme)
	ctx, cancel := context.WithCancel(parent)

	return Model{
		currentView: ViewWorkflow,
		st:          st,
		fetcher:     opts.Fetcher,
		log:         log,
		ctx:         ctx,
		cancel:      cancel,
		workflow:    views.NewWorkflowModel(st, opts.Demo),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.workflow.Init(), m.fetchCmd())
}

// fetchCmd runs the view's single fetch under the model's context and
// normalizes the result.
func (m Model) fetchCmd() tea.Cmd {
	ctx, fetcher, log := m.ctx, m.fetcher, m.log
	return func() tea.Msg {
		items, err := fetcher.Fetch(ctx)
		if err != nil {
			log.Error("Fetch failed", "error", err)
			return msgs.TasksFailedMsg{Err: err}
		}
		tasks := plan.Normalize(items)
		log.Debug("Tasks loaded", "count", len(tasks))
		return msgs.TasksLoadedMsg{Tasks: tasks}
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.closed = true
	m.cancel()
	return m, tea.Quit
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.workflow.SetSize(msg.Width, msg.Height)
		if m.currentView == ViewTaskDetail {
			m.detail.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "q":
			// The detail panel handles q itself and closes back to the diagram.
			if m.currentView == ViewWorkflow {
				return m.quit()
			}
		}

	case msgs.TasksLoadedMsg:
		if m.closed {
			m.log.Debug("Dropping fetch result after quit")
			return m, nil
		}
		m.workflow.SetTasks(msg.Tasks)
		return m, nil

	case msgs.TasksFailedMsg:
		if m.closed {
			m.log.Debug("Dropping fetch failure after quit")
			return m, nil
		}
		m.workflow.SetError(fetch.UserMessage)
		return m, nil

	case msgs.OpenTaskMsg:
		m.detail = views.NewTaskDetailModel(m.st, msg.Task)
		m.detail.SetSize(m.width, m.height)
		m.currentView = ViewTaskDetail
		return m, nil

	case msgs.CloseTaskMsg:
		m.currentView = ViewWorkflow
		return m, nil
	}

	if m.closed {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewTaskDetail:
		m.detail, cmd = m.detail.Update(msg)
	default:
		m.workflow, cmd = m.workflow.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.closed || (m.width == 0 && m.height == 0) {
		return ""
	}

	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	switch m.currentView {
	case ViewTaskDetail:
		return m.detail.View()
	default:
		return m.workflow.View()
	}
}

func (m Model) renderTerminalTooSmall() string {
	lines := []string{
		m.st.Error.Render("Terminal too small"),
		"",
		fmt.Sprintf("Minimum: %dx%d", MinTerminalWidth, MinTerminalHeight),
		fmt.Sprintf("Current: %dx%d", m.width, m.height),
	}
	content := strings.Join(lines, "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
