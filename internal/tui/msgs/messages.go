// Package msgs defines shared message types passed between the TUI model and
// its views.
package msgs

import "github.com/pablasso/fieldplan/internal/plan"

// TasksLoadedMsg carries the normalized tasks from the view's fetch.
type TasksLoadedMsg struct {
	Tasks []plan.Task
}

// TasksFailedMsg reports a failed fetch.
type TasksFailedMsg struct {
	Err error
}

// OpenTaskMsg asks the app to show the detail panel for a task.
type OpenTaskMsg struct {
	Task plan.Task
}

// CloseTaskMsg returns from the detail panel to the diagram.
type CloseTaskMsg struct{}
