package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pablasso/fieldplan/internal/plan"
)

// tasksReport is the --json shape of the tasks and normalize commands.
type tasksReport struct {
	Tasks   []plan.Task  `json:"tasks"`
	Summary plan.Summary `json:"summary"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// printTasks writes tasks and their summary as JSON or as a table.
func printTasks(w io.Writer, tasks []plan.Task, asJSON bool) error {
	if tasks == nil {
		tasks = []plan.Task{}
	}
	summary := plan.Aggregate(tasks)

	if asJSON {
		return writeJSON(w, tasksReport{Tasks: tasks, Summary: summary})
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
	} else {
		rows := make([][]string, 0, len(tasks))
		for _, task := range tasks {
			rows = append(rows, []string{task.ID, task.Status.Label(), string(task.Icon), task.Description})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "STATUS", "ICON", "ACTIVITY").
			Rows(rows...)
		fmt.Fprintln(w, t.Render())
	}
	printSummary(w, summary)
	return nil
}

func printSummary(w io.Writer, s plan.Summary) {
	fmt.Fprintf(w, "Total: %d  Completed: %d  Upcoming: %d  In Progress: %d\n",
		s.Total, s.Completed, s.Upcoming, s.InProgress)
}
