package plan

// Summary counts tasks by status for the summary bar.
type Summary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Upcoming   int `json:"upcoming"`
	InProgress int `json:"inProgress"`
}

// Aggregate counts tasks by status. Tasks with an unknown status only count
// toward Total.
func Aggregate(tasks []Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case StatusCompleted:
			s.Completed++
		case StatusUpcoming:
			s.Upcoming++
		case StatusInProgress:
			s.InProgress++
		}
	}
	return s
}
