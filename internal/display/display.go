// Package display draws a single-line fetch status on a terminal while the
// CLI waits for the task-plan endpoint.
package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
)

const maxEndpointWidth = 48

// Status represents the current fetch status.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusLoading:
		return "Carregando tarefas..."
	case StatusLoaded:
		return "Loaded"
	case StatusFailed:
		return "Failed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// State holds the current display state.
type State struct {
	Endpoint  string
	Tasks     int
	Status    Status
	StartTime time.Time
}

// Display manages the terminal status line.
type Display struct {
	mu       sync.Mutex
	writer   io.Writer
	state    State
	ticker   *time.Ticker
	done     chan struct{}
	wg       sync.WaitGroup
	active   bool
	lastLine string
}

// New creates a new Display writing to the given writer.
func New(w io.Writer) *Display {
	return &Display{
		writer: w,
		done:   make(chan struct{}),
	}
}

// Start begins the display update loop.
func (d *Display) Start(endpoint string) {
	d.mu.Lock()
	if d.active {
		d.mu.Unlock()
		return
	}
	d.active = true
	d.state.Endpoint = endpoint
	d.state.Status = StatusLoading
	d.state.StartTime = time.Now()
	d.ticker = time.NewTicker(time.Second)
	d.wg.Add(1)
	d.mu.Unlock()

	go d.updateLoop()
}

// Stop halts the update loop and clears the status line. It blocks until
// the update goroutine has exited.
func (d *Display) Stop() {
	if !d.halt() {
		return
	}
	d.clearLine()
}

// Finish records the fetch outcome, halts the update loop and leaves the
// final status line on the terminal followed by a newline. Anything written
// to the same writer afterwards starts on a fresh line. Stop is a no-op after
// Finish.
func (d *Display) Finish(status Status, tasks int) {
	d.UpdateStatus(status, tasks)
	if !d.halt() {
		return
	}

	d.mu.Lock()
	state := d.state
	d.mu.Unlock()

	line := d.formatLine(state, time.Since(state.StartTime))
	fmt.Fprintf(d.writer, "\r\033[K%s\n", line)
}

// halt stops the update goroutine and reports whether it was running.
func (d *Display) halt() bool {
	d.mu.Lock()
	if !d.active {
		d.mu.Unlock()
		return false
	}
	d.active = false
	d.mu.Unlock()

	d.ticker.Stop()
	close(d.done)
	d.wg.Wait()
	return true
}

// UpdateStatus records the fetch outcome and the number of tasks produced.
func (d *Display) UpdateStatus(status Status, tasks int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Status = status
	d.state.Tasks = tasks
}

func (d *Display) updateLoop() {
	defer d.wg.Done()
	d.render()
	for {
		select {
		case <-d.ticker.C:
			d.render()
		case <-d.done:
			return
		}
	}
}

func (d *Display) render() {
	d.mu.Lock()
	state := d.state
	lastLine := d.lastLine
	d.mu.Unlock()

	line := d.formatLine(state, time.Since(state.StartTime))
	if line == lastLine {
		return
	}

	d.mu.Lock()
	d.lastLine = line
	d.mu.Unlock()

	fmt.Fprintf(d.writer, "\r\033[K%s", line)
}

// formatLine creates the status line string.
func (d *Display) formatLine(state State, elapsed time.Duration) string {
	if state.Endpoint == "" {
		return ""
	}

	endpoint := ansi.Truncate(state.Endpoint, maxEndpointWidth, "...")

	line := fmt.Sprintf("%s │ ⏱ %s │ %s", endpoint, formatDuration(elapsed), state.Status)
	if state.Status == StatusLoaded {
		line += fmt.Sprintf(" (%d tasks)", state.Tasks)
	}
	return line
}

func (d *Display) clearLine() {
	fmt.Fprintf(d.writer, "\r\033[K")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
