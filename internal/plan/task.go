package plan

// Status is the display state of a task.
type Status string

// Task status constants
const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in_progress"
	StatusUpcoming   Status = "upcoming"
)

// Label returns the pt-BR label shown next to a task.
func (s Status) Label() string {
	switch s {
	case StatusCompleted:
		return "Concluído"
	case StatusInProgress:
		return "Em andamento"
	case StatusUpcoming:
		return "Próximo"
	default:
		return "Status desconhecido"
	}
}

// Task is a normalized, render-ready unit derived from one activity.
type Task struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Status          Status   `json:"status"`
	Icon            Icon     `json:"icon"`
	Recommendations []string `json:"recommendations"`
}
