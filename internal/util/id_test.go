package util

import "testing"

func TestTaskID(t *testing.T) {
	tests := []struct {
		planIndex     int
		activityIndex int
		expected      string
	}{
		{0, 0, "task-0-0"},
		{0, 1, "task-0-1"},
		{3, 0, "task-3-0"},
		{12, 7, "task-12-7"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := TaskID(tt.planIndex, tt.activityIndex)
			if result != tt.expected {
				t.Errorf("TaskID(%d, %d) = %q, want %q", tt.planIndex, tt.activityIndex, result, tt.expected)
			}
		})
	}
}

func TestTaskID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			id := TaskID(i, j)
			if seen[id] {
				t.Fatalf("duplicate id %q", id)
			}
			seen[id] = true
		}
	}
}
