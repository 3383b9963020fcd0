package plan

import (
	"errors"
	"strings"

	"github.com/pablasso/fieldplan/internal/util"
)

const (
	activityDelimiter = "\n-"

	// DefaultTaskTitle is the title every normalized task carries.
	DefaultTaskTitle = "Moisture Management"

	defaultRecommendationPrefix = "Recomendação padrão para "
)

// Normalize flattens plan items into tasks, preserving (item, activity) order.
// Items without activities contribute nothing and do not shift later indices.
func Normalize(items []PlanItem) []Task {
	tasks := make([]Task, 0)
	for i, item := range items {
		for j, activity := range ExtractActivities(item.Plan.Recommendations) {
			tasks = append(tasks, newTask(i, j, activity))
		}
	}
	return tasks
}

// NormalizeJSON decodes a raw payload and normalizes it. A payload that is
// valid JSON but not an array yields an empty sequence and no error.
func NormalizeJSON(raw []byte) ([]Task, error) {
	items, err := DecodePlanItems(raw)
	if err != nil {
		if errors.Is(err, ErrNotArray) {
			return []Task{}, nil
		}
		return nil, err
	}
	return Normalize(items), nil
}

// ExtractActivities returns the activities of one plan item.
//
// List content keeps order and drops empty strings without trimming. Text
// content is split on "\n-"; the segment before the first delimiter is
// discarded and the rest are trimmed, dropping empties. A leading "-" counts
// as a delimiter, so "-A\n-B" yields A and B.
func ExtractActivities(r Recommendations) []string {
	if r.IsList {
		activities := make([]string, 0, len(r.List))
		for _, activity := range r.List {
			if activity != "" {
				activities = append(activities, activity)
			}
		}
		return activities
	}

	segments := strings.Split("\n"+r.Text, activityDelimiter)
	activities := make([]string, 0, len(segments))
	for _, segment := range segments[1:] {
		if activity := strings.TrimSpace(segment); activity != "" {
			activities = append(activities, activity)
		}
	}
	return activities
}

func newTask(planIndex, activityIndex int, activity string) Task {
	status := StatusUpcoming
	if planIndex == 0 && activityIndex == 0 {
		status = StatusInProgress
	}

	return Task{
		ID:              util.TaskID(planIndex, activityIndex),
		Title:           DefaultTaskTitle,
		Description:     activity,
		Status:          status,
		Icon:            IconFor(planIndex),
		Recommendations: []string{defaultRecommendationPrefix + activity},
	}
}
