package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// LoadOptions selects the optional sources applied on top of the defaults.
type LoadOptions struct {
	// File is an explicit YAML config path. When empty, DefaultFile is used
	// if it exists.
	File string
	// Overrides are applied last, keyed by config path (e.g. "log.level").
	Overrides map[string]any
}

// Load resolves configuration: defaults, YAML file, environment, overrides.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path, err := resolveFile(opts.File)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(yamlFile(path), nil); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: transformEnv,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply override %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and reports every offending field.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func resolveFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, nil
	}
	return "", nil
}

func transformEnv(key, value string) (string, any) {
	if path, ok := envKeys[key]; ok {
		return path, value
	}
	if path, ok := envKeys[envPrefix+key]; ok {
		return path, value
	}
	return "", nil
}

// yamlProvider reads a YAML file into a nested map for koanf.
type yamlProvider struct {
	path string
}

func yamlFile(path string) *yamlProvider {
	return &yamlProvider{path: path}
}

// ReadBytes is not supported; koanf calls Read when no parser is given.
func (p *yamlProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("yaml provider does not support ReadBytes")
}

// Read decodes the YAML document.
func (p *yamlProvider) Read() (map[string]any, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return out, nil
}
