package plan

import "testing"

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		tasks    []Task
		expected Summary
	}{
		{
			name:     "empty",
			tasks:    []Task{},
			expected: Summary{},
		},
		{
			name:     "nil",
			tasks:    nil,
			expected: Summary{},
		},
		{
			name: "mixed statuses",
			tasks: []Task{
				{Status: StatusInProgress},
				{Status: StatusUpcoming},
				{Status: StatusUpcoming},
				{Status: StatusCompleted},
				{Status: Status("blocked")},
			},
			expected: Summary{Total: 5, Completed: 1, Upcoming: 2, InProgress: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(tt.tasks)
			if result != tt.expected {
				t.Errorf("Aggregate() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestAggregate_NormalizedTasks(t *testing.T) {
	tasks := Normalize([]PlanItem{
		{Plan: PlanBody{Recommendations: RecommendationText("-A\n-B\n-C")}},
	})

	result := Aggregate(tasks)
	expected := Summary{Total: 3, Completed: 0, Upcoming: 2, InProgress: 1}
	if result != expected {
		t.Errorf("Aggregate() = %+v, want %+v", result, expected)
	}
}

func TestStatus_Label(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusCompleted, "Concluído"},
		{StatusInProgress, "Em andamento"},
		{StatusUpcoming, "Próximo"},
		{Status("other"), "Status desconhecido"},
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.expected {
			t.Errorf("%q.Label() = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func TestIconFor(t *testing.T) {
	icons := Icons()
	if len(icons) != 5 {
		t.Fatalf("expected 5 icons, got %d", len(icons))
	}

	for i := 0; i < 12; i++ {
		if got := IconFor(i); got != icons[i%5] {
			t.Errorf("IconFor(%d) = %s, want %s", i, got, icons[i%5])
		}
	}
	if got := IconFor(-1); got != IconArrowPath {
		t.Errorf("IconFor(-1) = %s, want %s", got, IconArrowPath)
	}
}
