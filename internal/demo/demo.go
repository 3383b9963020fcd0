// Package demo serves an embedded task plan so the TUI can run offline.
package demo

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/pablasso/fieldplan/internal/fetch"
	"github.com/pablasso/fieldplan/internal/logger"
	"github.com/pablasso/fieldplan/internal/plan"
)

//go:embed fixture.json
var fixturePayload []byte

// Payload returns a copy of the embedded fixture payload.
func Payload() []byte {
	out := make([]byte, len(fixturePayload))
	copy(out, fixturePayload)
	return out
}

// Fetcher stands in for fetch.Client, returning the fixture after the
// preset delay.
type Fetcher struct {
	config Config
	delay  time.Duration
	log    logger.Logger
}

var _ fetch.Fetcher = (*Fetcher)(nil)

// NewFetcher creates a demo fetcher for cfg.
func NewFetcher(cfg Config, log logger.Logger) *Fetcher {
	if cfg.Scenario == "" {
		cfg.Scenario = ScenarioSuccess
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &Fetcher{config: cfg, delay: cfg.Preset.Delay(), log: log}
}

// WithDelay overrides the preset latency.
func (f *Fetcher) WithDelay(d time.Duration) *Fetcher {
	f.delay = d
	return f
}

// Fetch waits for the preset delay, honoring ctx, then returns the scenario's
// result.
func (f *Fetcher) Fetch(ctx context.Context) ([]plan.PlanItem, error) {
	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", fetch.ErrFetchFailed, ctx.Err())
	case <-timer.C:
	}

	switch f.config.Scenario {
	case ScenarioFail:
		f.log.Error("demo task plan request failed", "scenario", f.config.Scenario)
		return nil, fmt.Errorf("%w: simulated outage", fetch.ErrFetchFailed)
	case ScenarioEmpty:
		f.log.Warn("task plan is not an array; showing no tasks", "scenario", f.config.Scenario)
		return []plan.PlanItem{}, nil
	}

	items, err := plan.DecodePlanItems(fixturePayload)
	if err != nil {
		if errors.Is(err, plan.ErrNotArray) {
			return []plan.PlanItem{}, nil
		}
		return nil, fmt.Errorf("%w: %w", fetch.ErrFetchFailed, err)
	}
	f.log.Debug("demo task plan served", "items", len(items))
	return items, nil
}
