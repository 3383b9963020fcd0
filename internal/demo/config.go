package demo

import (
	"fmt"
	"strings"
	"time"
)

// Preset controls how long the simulated fetch takes.
type Preset string

const (
	PresetQuick  Preset = "quick"
	PresetMedium Preset = "medium"
	PresetSlow   Preset = "slow"
)

// ParsePreset validates and normalizes a preset value.
func ParsePreset(value string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(value))) {
	case PresetQuick, PresetMedium, PresetSlow:
		return Preset(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo preset %q (valid: quick, medium, slow)", value)
	}
}

// Delay returns the simulated latency for the preset.
func (p Preset) Delay() time.Duration {
	switch p {
	case PresetQuick:
		return 200 * time.Millisecond
	case PresetSlow:
		return 3 * time.Second
	default:
		return time.Second
	}
}

// Scenario selects what the simulated endpoint returns.
type Scenario string

const (
	ScenarioSuccess Scenario = "success" // embedded fixture payload
	ScenarioEmpty   Scenario = "empty"   // a payload that is not an array
	ScenarioFail    Scenario = "fail"    // a transport failure
)

// ParseScenario validates and normalizes a scenario value.
func ParseScenario(value string) (Scenario, error) {
	switch Scenario(strings.ToLower(strings.TrimSpace(value))) {
	case ScenarioSuccess, ScenarioEmpty, ScenarioFail:
		return Scenario(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo scenario %q (valid: success, empty, fail)", value)
	}
}

// Config holds demo mode configuration.
type Config struct {
	Preset   Preset
	Scenario Scenario
}
