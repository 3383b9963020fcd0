package version

import "testing"

func TestString(t *testing.T) {
	origVersion, origSHA, origDate := Version, CommitSHA, BuildDate
	defer func() { Version, CommitSHA, BuildDate = origVersion, origSHA, origDate }()

	Version, CommitSHA, BuildDate = "v1.2.3", "abc1234", "2025-01-02"

	expected := "v1.2.3 (commit abc1234, built 2025-01-02)"
	if got := String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
