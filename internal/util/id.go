package util

import "fmt"

// TaskID returns a task ID in the format task-<planIndex>-<activityIndex>.
// IDs are unique within one normalization pass because both indices only grow.
func TaskID(planIndex, activityIndex int) string {
	return fmt.Sprintf("task-%d-%d", planIndex, activityIndex)
}
