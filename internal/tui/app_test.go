package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/fieldplan/internal/fetch"
	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/pablasso/fieldplan/internal/tui/msgs"
	"github.com/pablasso/fieldplan/internal/tui/styles"
)

type stubFetcher struct {
	items []plan.PlanItem
	err   error
	ctx   context.Context
}

func (s *stubFetcher) Fetch(ctx context.Context) ([]plan.PlanItem, error) {
	s.ctx = ctx
	return s.items, s.err
}

func newTestModel(f fetch.Fetcher) Model {
	m := initialModel(context.Background(), Options{Theme: styles.ThemeLight, Fetcher: f})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func sampleItems() []plan.PlanItem {
	return []plan.PlanItem{
		{Plan: plan.PlanBody{Recommendations: plan.RecommendationList("Irrigar canteiro A", "")}},
		{Plan: plan.PlanBody{Recommendations: plan.RecommendationText("-Medir pH\n-Ajustar sombrite")}},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModel_View_TerminalTooSmall(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		expectSmall bool
	}{
		{"exactly minimum size", MinTerminalWidth, MinTerminalHeight, false},
		{"width too small", MinTerminalWidth - 1, MinTerminalHeight, true},
		{"height too small", MinTerminalWidth, MinTerminalHeight - 1, true},
		{"both dimensions too small", MinTerminalWidth - 10, MinTerminalHeight - 5, true},
		{"larger than minimum", 100, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := initialModel(context.Background(), Options{Fetcher: &stubFetcher{}})
			m, _ = update(t, m, tea.WindowSizeMsg{Width: tt.width, Height: tt.height})

			view := m.View()

			if tt.expectSmall {
				for _, want := range []string{"Terminal too small", "Minimum:", "Current:"} {
					if !strings.Contains(view, want) {
						t.Errorf("expected view to contain %q", want)
					}
				}
			} else if strings.Contains(view, "Terminal too small") {
				t.Error("did not expect view to contain 'Terminal too small'")
			}
		})
	}
}

func TestModel_renderTerminalTooSmall_ShowsDimensions(t *testing.T) {
	m := initialModel(context.Background(), Options{Fetcher: &stubFetcher{}})
	m.width = 50
	m.height = 10

	view := m.renderTerminalTooSmall()

	if !strings.Contains(view, "60x15") {
		t.Error("expected minimum dimensions 60x15 to be shown")
	}
	if !strings.Contains(view, "50x10") {
		t.Error("expected current dimensions 50x10 to be shown")
	}
}

func TestModel_View_BeforeFirstResize(t *testing.T) {
	m := initialModel(context.Background(), Options{Fetcher: &stubFetcher{}})
	if m.View() != "" {
		t.Error("expected empty view before the first window size message")
	}
}

func TestModel_Init_ShowsLoading(t *testing.T) {
	m := newTestModel(&stubFetcher{})

	if m.Init() == nil {
		t.Fatal("expected Init() to return a command")
	}
	if !strings.Contains(m.View(), "Carregando tarefas...") {
		t.Errorf("expected loading view, got:\n%s", m.View())
	}
}

func TestModel_FetchCmd_Success(t *testing.T) {
	f := &stubFetcher{items: sampleItems()}
	m := newTestModel(f)

	msg := m.fetchCmd()()

	loaded, ok := msg.(msgs.TasksLoadedMsg)
	if !ok {
		t.Fatalf("expected TasksLoadedMsg, got %T", msg)
	}
	if len(loaded.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(loaded.Tasks))
	}
	if loaded.Tasks[2].ID != "task-1-1" || loaded.Tasks[2].Description != "Ajustar sombrite" {
		t.Errorf("unexpected last task: %+v", loaded.Tasks[2])
	}
	if f.ctx != m.ctx {
		t.Error("expected fetch to run under the model context")
	}
}

func TestModel_FetchCmd_Failure(t *testing.T) {
	f := &stubFetcher{err: fmt.Errorf("%w: boom", fetch.ErrFetchFailed)}
	m := newTestModel(f)

	msg := m.fetchCmd()()

	failed, ok := msg.(msgs.TasksFailedMsg)
	if !ok {
		t.Fatalf("expected TasksFailedMsg, got %T", msg)
	}
	if !errors.Is(failed.Err, fetch.ErrFetchFailed) {
		t.Errorf("expected ErrFetchFailed, got %v", failed.Err)
	}
}

func TestModel_Update_TasksLoaded(t *testing.T) {
	m := newTestModel(&stubFetcher{})
	tasks := plan.Normalize(sampleItems())

	m, _ = update(t, m, msgs.TasksLoadedMsg{Tasks: tasks})

	if m.workflow.Loading() {
		t.Error("expected workflow to leave loading state")
	}
	if len(m.workflow.Tasks()) != len(tasks) {
		t.Errorf("expected %d tasks, got %d", len(tasks), len(m.workflow.Tasks()))
	}
	if !strings.Contains(m.View(), "Irrigar canteiro A") {
		t.Error("expected loaded task in view")
	}
}

func TestModel_Update_TasksFailed_ShowsFixedMessage(t *testing.T) {
	m := newTestModel(&stubFetcher{})

	m, _ = update(t, m, msgs.TasksFailedMsg{Err: errors.New("dial tcp: refused")})

	view := m.View()
	if !strings.Contains(view, fetch.UserMessage) {
		t.Errorf("expected %q in view, got:\n%s", fetch.UserMessage, view)
	}
	if strings.Contains(view, "dial tcp") {
		t.Error("transport details must not reach the view")
	}
}

func TestModel_Quit_CancelsFetchAndDropsLateResults(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			m := newTestModel(&stubFetcher{})
			ctx := m.ctx

			m, cmd := update(t, m, key)

			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("expected tea.QuitMsg, got %T", cmd())
			}
			if ctx.Err() == nil {
				t.Error("expected fetch context to be cancelled")
			}

			m, _ = update(t, m, msgs.TasksLoadedMsg{Tasks: plan.Normalize(sampleItems())})
			if len(m.workflow.Tasks()) != 0 {
				t.Error("expected result after teardown to be dropped")
			}
			if m.View() != "" {
				t.Error("expected empty view after quit")
			}
		})
	}
}

func TestModel_OpenAndCloseTask(t *testing.T) {
	m := newTestModel(&stubFetcher{})
	tasks := plan.Normalize(sampleItems())
	m, _ = update(t, m, msgs.TasksLoadedMsg{Tasks: tasks})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected enter to open the selected task")
	}
	m, _ = update(t, m, cmd())

	if m.currentView != ViewTaskDetail {
		t.Fatalf("expected detail view, got %d", m.currentView)
	}
	if m.detail.Task().ID != tasks[0].ID {
		t.Errorf("expected task %s in detail, got %s", tasks[0].ID, m.detail.Task().ID)
	}
	if !strings.Contains(m.View(), "Esc/q Voltar") {
		t.Error("expected detail status bar")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected esc to close the detail panel")
	}
	m, _ = update(t, m, cmd())

	if m.currentView != ViewWorkflow {
		t.Errorf("expected workflow view after esc, got %d", m.currentView)
	}
}

func TestRun_RequiresFetcher(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Error("expected error without a fetcher")
	}
}

func TestModel_TaskDetail_QClosesPanelBeforeQuitting(t *testing.T) {
	m := newTestModel(&stubFetcher{})
	m, _ = update(t, m, msgs.TasksLoadedMsg{Tasks: plan.Normalize(sampleItems())})
	m, _ = update(t, m, msgs.OpenTaskMsg{Task: m.workflow.Tasks()[0]})

	q := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	m, cmd := update(t, m, q)
	if m.closed {
		t.Fatal("q in the detail panel must not quit the program")
	}
	if cmd == nil {
		t.Fatal("expected q to close the detail panel")
	}
	m, _ = update(t, m, cmd())
	if m.currentView != ViewWorkflow {
		t.Fatalf("expected workflow view after q, got %d", m.currentView)
	}

	m, cmd = update(t, m, q)
	if !m.closed {
		t.Error("expected q on the diagram to quit")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestModel_TaskDetail_CtrlCQuits(t *testing.T) {
	m := newTestModel(&stubFetcher{})
	m, _ = update(t, m, msgs.TasksLoadedMsg{Tasks: plan.Normalize(sampleItems())})
	m, _ = update(t, m, msgs.OpenTaskMsg{Task: m.workflow.Tasks()[0]})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.closed {
		t.Error("expected ctrl+c to quit from the detail panel")
	}
}

func TestModel_Quit_DropsLateFailure(t *testing.T) {
	m := newTestModel(&stubFetcher{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	m, _ = update(t, m, msgs.TasksFailedMsg{Err: errors.New("context canceled")})
	if m.workflow.Failed() {
		t.Error("expected failure after teardown to be dropped")
	}
}
