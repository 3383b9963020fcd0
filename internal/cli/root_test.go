package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pablasso/fieldplan/internal/demo"
	"github.com/pablasso/fieldplan/internal/fetch"
	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/pablasso/fieldplan/internal/testutil"
	"github.com/pablasso/fieldplan/internal/tui"
	"github.com/pablasso/fieldplan/internal/tui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, rt *runtime, stdin string, args ...string) result {
	t.Helper()
	if rt == nil {
		rt = &runtime{runTUI: func(tui.Options) error {
			t.Fatal("TUI should not start")
			return nil
		}}
	}
	cmd := newRootCmd(rt)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func captureTUI(captured *tui.Options) *runtime {
	return &runtime{runTUI: func(opts tui.Options) error {
		*captured = opts
		return nil
	}}
}

func TestTasksCmd(t *testing.T) {
	t.Run("Should list tasks and summary from the endpoint", func(t *testing.T) {
		srv := testutil.PlanServer(t, http.StatusOK, demo.Payload())

		res := execute(t, nil, "", "tasks", "--endpoint", srv.URL)

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "task-0-0")
		assert.Contains(t, res.stdout, "Em andamento")
		assert.Contains(t, res.stdout, "Total: 9  Completed: 0  Upcoming: 8  In Progress: 1")
	})

	t.Run("Should print JSON with --json", func(t *testing.T) {
		srv := testutil.PlanServer(t, http.StatusOK, demo.Payload())

		res := execute(t, nil, "", "tasks", "--json", "--endpoint", srv.URL)
		require.NoError(t, res.err)

		var report tasksReport
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
		assert.Len(t, report.Tasks, 9)
		assert.Equal(t, plan.Summary{Total: 9, Upcoming: 8, InProgress: 1}, report.Summary)
		assert.Equal(t, plan.StatusInProgress, report.Tasks[0].Status)
	})

	t.Run("Should export tasks with --output", func(t *testing.T) {
		srv := testutil.PlanServer(t, http.StatusOK, demo.Payload())
		out := filepath.Join(t.TempDir(), "export", "tasks.json")

		res := execute(t, nil, "", "tasks", "--endpoint", srv.URL, "--output", out)
		require.NoError(t, res.err)
		assert.Contains(t, res.stderr, "Wrote 9 tasks to")

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		var tasks []plan.Task
		require.NoError(t, json.Unmarshal(data, &tasks))
		assert.Len(t, tasks, 9)
		assert.Equal(t, "task-0-0", tasks[0].ID)
	})

	t.Run("Should report the fixed message on failure", func(t *testing.T) {
		srv := testutil.PlanServer(t, http.StatusInternalServerError, []byte(`{"message":"boom"}`))

		res := execute(t, nil, "", "tasks", "--endpoint", srv.URL)

		require.Error(t, res.err)
		assert.True(t, errors.Is(res.err, fetch.ErrFetchFailed))
		assert.Contains(t, res.err.Error(), fetch.UserMessage)
		assert.Empty(t, res.stdout)
	})

	t.Run("Should treat a non-array payload as no tasks", func(t *testing.T) {
		srv := testutil.PlanServer(t, http.StatusOK, []byte(`{"plan":{}}`))

		res := execute(t, nil, "", "tasks", "--endpoint", srv.URL)

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "No tasks.")
		assert.Contains(t, res.stdout, "Total: 0")
	})

	t.Run("Should read the endpoint from the environment", func(t *testing.T) {
		srv := testutil.PlanServer(t, http.StatusOK, []byte(`[{"plan":{"recommendations":["X"]}}]`))
		t.Setenv("FIELDPLAN_ENDPOINT", srv.URL)

		res := execute(t, nil, "", "tasks", "--json")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, `"description": "X"`)
	})
}

func TestSummaryCmd(t *testing.T) {
	t.Run("Should print counts", func(t *testing.T) {
		srv := testutil.PlanServer(t, http.StatusOK, demo.Payload())

		res := execute(t, nil, "", "summary", "--endpoint", srv.URL)

		require.NoError(t, res.err)
		assert.Equal(t, "Total: 9  Completed: 0  Upcoming: 8  In Progress: 1\n", res.stdout)
	})

	t.Run("Should print JSON counts", func(t *testing.T) {
		srv := testutil.PlanServer(t, http.StatusOK, demo.Payload())

		res := execute(t, nil, "", "summary", "--json", "--endpoint", srv.URL)
		require.NoError(t, res.err)

		var s plan.Summary
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &s))
		assert.Equal(t, plan.Summary{Total: 9, Upcoming: 8, InProgress: 1}, s)
		assert.Contains(t, res.stdout, `"inProgress": 1`)
	})
}

func TestNormalizeCmd(t *testing.T) {
	t.Run("Should normalize a payload file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "payload.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"plan":{"recommendations":"-A\n-B\n-C"}}]`), 0644))

		res := execute(t, nil, "", "normalize", path, "--json")
		require.NoError(t, res.err)

		var report tasksReport
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
		require.Len(t, report.Tasks, 3)
		assert.Equal(t, "A", report.Tasks[0].Description)
		assert.Equal(t, "C", report.Tasks[2].Description)
	})

	t.Run("Should read stdin for -", func(t *testing.T) {
		res := execute(t, nil, `[{"plan":{"recommendations":["X"]}},{"plan":{"recommendations":[]}}]`, "normalize", "-")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "task-0-0")
		assert.Contains(t, res.stdout, "Total: 1")
	})

	t.Run("Should reject invalid JSON", func(t *testing.T) {
		res := execute(t, nil, `{not json`, "normalize", "-")

		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "invalid payload")
	})

	t.Run("Should fail for a missing file", func(t *testing.T) {
		res := execute(t, nil, "", "normalize", filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "failed to read payload")
	})

	t.Run("Should require exactly one argument", func(t *testing.T) {
		res := execute(t, nil, "", "normalize")
		require.Error(t, res.err)
	})
}

func TestRootCmd_LaunchesTUI(t *testing.T) {
	t.Run("Should start the TUI with the HTTP fetcher", func(t *testing.T) {
		var opts tui.Options
		res := execute(t, captureTUI(&opts), "", "--theme", "dark")

		require.NoError(t, res.err)
		assert.Equal(t, styles.ThemeDark, opts.Theme)
		assert.False(t, opts.Demo)
		client, ok := opts.Fetcher.(*fetch.Client)
		require.True(t, ok, "expected *fetch.Client, got %T", opts.Fetcher)
		assert.NotEmpty(t, client.Endpoint())
		assert.NotNil(t, opts.Logger)
	})

	t.Run("Should start the TUI in demo mode", func(t *testing.T) {
		var opts tui.Options
		res := execute(t, captureTUI(&opts), "", "--demo", "--demo-preset", "quick")

		require.NoError(t, res.err)
		assert.True(t, opts.Demo)
		_, ok := opts.Fetcher.(*demo.Fetcher)
		assert.True(t, ok, "expected *demo.Fetcher, got %T", opts.Fetcher)
	})

	t.Run("Should require --demo for demo flags", func(t *testing.T) {
		res := execute(t, nil, "", "--demo-preset", "slow")

		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "require --demo")
	})

	t.Run("Should reject an invalid demo preset", func(t *testing.T) {
		res := execute(t, nil, "", "--demo", "--demo-preset", "turbo")

		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "invalid demo preset")
	})

	t.Run("Should reject an invalid theme", func(t *testing.T) {
		res := execute(t, nil, "", "--theme", "neon")
		require.Error(t, res.err)
	})

	t.Run("Should write TUI logs to the configured file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "fieldplan.log")
		t.Setenv("FIELDPLAN_LOG_FILE", logFile)

		var opts tui.Options
		res := execute(t, captureTUI(&opts), "", "--log-level", "debug")
		require.NoError(t, res.err)
		assert.NotNil(t, opts.Logger)

		_, err := os.Stat(logFile)
		assert.NoError(t, err)
	})
}

func TestDemoCmd(t *testing.T) {
	t.Run("Should launch the demo TUI", func(t *testing.T) {
		var opts tui.Options
		res := execute(t, captureTUI(&opts), "", "demo", "--preset", "slow", "--scenario", "fail")

		require.NoError(t, res.err)
		assert.True(t, opts.Demo)
		assert.IsType(t, &demo.Fetcher{}, opts.Fetcher)
	})

	t.Run("Should reject an unknown scenario", func(t *testing.T) {
		res := execute(t, nil, "", "demo", "--scenario", "chaos")

		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "invalid demo scenario")
	})
}

func TestVersionCmd(t *testing.T) {
	t.Run("Should print version even with an invalid config", func(t *testing.T) {
		t.Setenv("FIELDPLAN_RETRIES", "99")

		res := execute(t, nil, "", "version")

		require.NoError(t, res.err)
		assert.True(t, strings.HasPrefix(res.stdout, "fieldplan dev"))
	})
}

func TestConfigValidation(t *testing.T) {
	t.Run("Should reject out-of-range retries", func(t *testing.T) {
		res := execute(t, nil, "", "summary", "--retries", "9")
		require.Error(t, res.err)
	})

	t.Run("Should reject a non-http endpoint", func(t *testing.T) {
		res := execute(t, nil, "", "summary", "--endpoint", "ftp://example.com/plan")
		require.Error(t, res.err)
	})
}
