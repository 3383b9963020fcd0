//go:build ignore

// Command gen_demo_fixture captures a task-plan payload into the embedded
// demo fixture.
//
// Usage:
//
//	go run ./scripts/gen_demo_fixture.go -source https://.../prod/task-plan
//	go run ./scripts/gen_demo_fixture.go -source saved.json
//
// It reads the payload from the endpoint (or a saved file), keeps the first
// -max-items plan items, truncates long recommendation lines, checks that the
// result still normalizes, and writes it to `internal/demo/fixture.json`.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pablasso/fieldplan/internal/config"
	"github.com/pablasso/fieldplan/internal/fetch"
	"github.com/pablasso/fieldplan/internal/logger"
	"github.com/pablasso/fieldplan/internal/plan"
)

func truncateUTF8(s string, maxBytes int) string {
	if maxBytes <= 0 || len(s) <= maxBytes {
		return s
	}
	if maxBytes <= 3 {
		return s[:maxBytes]
	}
	target := maxBytes - 3
	i := 0
	for i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		if i+size > target {
			break
		}
		i += size
	}
	return s[:i] + "..."
}

// trimRecommendations truncates every line so "\n-" delimiters survive.
func trimRecommendations(r plan.Recommendations, maxBytes int) plan.Recommendations {
	if r.IsList {
		list := make([]string, len(r.List))
		for i, item := range r.List {
			list[i] = truncateUTF8(item, maxBytes)
		}
		return plan.RecommendationList(list...)
	}
	lines := strings.Split(r.Text, "\n")
	for i, line := range lines {
		lines[i] = truncateUTF8(line, maxBytes)
	}
	return plan.RecommendationText(strings.Join(lines, "\n"))
}

func loadItems(source string, timeout time.Duration) ([]plan.PlanItem, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client, err := fetch.New(fetch.Options{
			Endpoint: source,
			Timeout:  timeout,
			Retries:  2,
			Logger:   logger.NewLogger(&logger.Config{Level: logger.InfoLevel, Output: os.Stderr}),
		})
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return client.Fetch(ctx)
	}

	raw, err := plan.ReadPayload(source, os.Stdin)
	if err != nil {
		return nil, err
	}
	items, err := plan.DecodePlanItems(raw)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func main() {
	var (
		source       string
		outPath      string
		maxItems     int
		maxLineBytes int
		timeout      time.Duration
	)

	flag.StringVar(&source, "source", config.DefaultEndpoint, "Endpoint URL, payload file, or - for stdin")
	flag.StringVar(&outPath, "out", "internal/demo/fixture.json", "Output fixture path")
	flag.IntVar(&maxItems, "max-items", 6, "Max plan items to include (0 = all)")
	flag.IntVar(&maxLineBytes, "max-line-bytes", 160, "Max bytes per recommendation line")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Fetch timeout")
	flag.Parse()

	items, err := loadItems(source, timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load payload: %v\n", err)
		os.Exit(1)
	}

	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}
	for i := range items {
		items[i].Plan.Recommendations = trimRecommendations(items[i].Plan.Recommendations, maxLineBytes)
	}

	tasks := plan.Normalize(items)
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "payload normalizes to zero tasks; refusing to write an empty fixture")
		os.Exit(1)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal fixture: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write fixture: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d items, %d tasks, %d bytes)\n", outPath, len(items), len(tasks), len(data))
}
