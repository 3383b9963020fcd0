package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pablasso/fieldplan/internal/display"
	"github.com/pablasso/fieldplan/internal/fetch"
	"github.com/pablasso/fieldplan/internal/plan"
	"github.com/spf13/cobra"
)

// loadTasks fetches and normalizes the task plan under a context that ends on
// SIGINT/SIGTERM. A status line is drawn when stderr is a terminal and is
// finished before anything else is logged.
func (rt *runtime) loadTasks(cmd *cobra.Command, fetcher fetch.Fetcher, endpoint string) ([]plan.Task, error) {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var disp *display.Display
	if isTerminal(cmd.ErrOrStderr()) {
		disp = display.New(cmd.ErrOrStderr())
		disp.Start(endpoint)
		defer disp.Stop()
	}

	items, err := fetcher.Fetch(ctx)
	if err != nil {
		if disp != nil {
			status := display.StatusFailed
			if errors.Is(ctx.Err(), context.Canceled) {
				status = display.StatusCancelled
			}
			disp.Finish(status, 0)
		}
		rt.log.Error("Fetch failed", "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("%s (%w)", fetch.UserMessage, err)
	}

	tasks := plan.Normalize(items)
	if disp != nil {
		disp.Finish(display.StatusLoaded, len(tasks))
	}
	rt.log.Debug("Tasks normalized", "items", len(items), "tasks", len(tasks))
	return tasks, nil
}

// fetchTasks loads tasks from the configured endpoint.
func (rt *runtime) fetchTasks(cmd *cobra.Command) ([]plan.Task, error) {
	client, err := rt.newFetcher(rt.log)
	if err != nil {
		return nil, err
	}
	return rt.loadTasks(cmd, client, client.Endpoint())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
