package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pablasso/fieldplan/internal/config"
	"github.com/pablasso/fieldplan/internal/demo"
	"github.com/pablasso/fieldplan/internal/fetch"
	"github.com/pablasso/fieldplan/internal/logger"
	"github.com/pablasso/fieldplan/internal/tui"
	"github.com/pablasso/fieldplan/internal/tui/styles"
	"github.com/pablasso/fieldplan/internal/version"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent and root-only flag values.
type rootOptions struct {
	configFile string
	endpoint   string
	timeout    time.Duration
	retries    int
	theme      string
	logLevel   string
	logJSON    bool

	demo         bool
	demoPreset   string
	demoScenario string
}

// runtime is the state shared by every command after PersistentPreRunE.
type runtime struct {
	opts rootOptions
	cfg  *config.Config
	log  logger.Logger

	// runTUI starts the interactive view; replaced in tests.
	runTUI func(tui.Options) error
}

// flagOverrides maps persistent flag names to config paths.
var flagOverrides = map[string]string{
	"endpoint":  "endpoint",
	"timeout":   "timeout",
	"retries":   "retries",
	"theme":     "theme",
	"log-level": "log.level",
	"log-json":  "log.json",
}

// NewRootCmd builds the fieldplan command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&runtime{runTUI: tui.Run})
}

func newRootCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fieldplan",
		Short: "Terminal dashboard for the agricultural task plan",
		Long: `fieldplan fetches the task plan, turns each recommendation into a task,
and shows the monthly workflow. Run without a subcommand to open the
interactive diagram.`,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.runRoot(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&rt.opts.configFile, "config", "", "Config file (default ./"+config.DefaultFile+" if present)")
	pf.StringVar(&rt.opts.endpoint, "endpoint", config.DefaultEndpoint, "Task-plan endpoint URL")
	pf.DurationVar(&rt.opts.timeout, "timeout", 30*time.Second, "Request timeout")
	pf.IntVar(&rt.opts.retries, "retries", 0, "Retries on network errors and 5xx responses (0-5)")
	pf.StringVar(&rt.opts.theme, "theme", string(styles.ThemeLight), "Color theme: light, dark")
	pf.StringVar(&rt.opts.logLevel, "log-level", string(logger.InfoLevel), "Log level: debug, info, warn, error")
	pf.BoolVar(&rt.opts.logJSON, "log-json", false, "Emit logs as JSON")

	f := cmd.Flags()
	f.BoolVar(&rt.opts.demo, "demo", false, "Serve the embedded demo payload instead of the endpoint")
	f.StringVar(&rt.opts.demoPreset, "demo-preset", string(demo.PresetMedium), "Demo latency preset: quick, medium, slow")
	f.StringVar(&rt.opts.demoScenario, "demo-scenario", string(demo.ScenarioSuccess), "Demo scenario: success, empty, fail")

	cmd.AddCommand(
		newTasksCmd(rt),
		newSummaryCmd(rt),
		newNormalizeCmd(rt),
		newDemoCmd(rt),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration with changed flags as overrides and installs the
// command logger on stderr. Flag values are passed as strings and decoded by
// koanf like environment values.
func (rt *runtime) setup(cmd *cobra.Command) error {
	overrides := map[string]any{}
	flags := cmd.Flags()
	for name, key := range flagOverrides {
		if flags.Changed(name) {
			overrides[key] = flags.Lookup(name).Value.String()
		}
	}

	cfg, err := config.Load(config.LoadOptions{File: rt.opts.configFile, Overrides: overrides})
	if err != nil {
		return err
	}
	rt.cfg = cfg
	rt.log = newLogger(cfg, cmd.ErrOrStderr())
	logger.SetDefault(rt.log)
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), rt.log))

	rt.log.Debug("Configuration loaded", "endpoint", cfg.Endpoint, "timeout", cfg.Timeout, "retries", cfg.Retries)
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) logger.Logger {
	return logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.Log.Level),
		Output: w,
		JSON:   cfg.Log.JSON,
	})
}

// newFetcher builds the HTTP fetcher from the resolved configuration.
func (rt *runtime) newFetcher(log logger.Logger) (*fetch.Client, error) {
	return fetch.New(fetch.Options{
		Endpoint: rt.cfg.Endpoint,
		Timeout:  rt.cfg.Timeout,
		Retries:  rt.cfg.Retries,
		Logger:   log,
	})
}

func (rt *runtime) runRoot(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if !rt.opts.demo && (flags.Changed("demo-preset") || flags.Changed("demo-scenario")) {
		return errors.New("--demo-preset/--demo-scenario require --demo")
	}

	if rt.opts.demo {
		cfg, err := parseDemoConfig(rt.opts.demoPreset, rt.opts.demoScenario)
		if err != nil {
			return err
		}
		return rt.launchTUI(cmd, &cfg)
	}
	return rt.launchTUI(cmd, nil)
}

// launchTUI runs the interactive view. With demoCfg set it serves the
// embedded fixture. Logs go to cfg.Log.File or nowhere, never to the
// terminal the TUI draws on.
func (rt *runtime) launchTUI(cmd *cobra.Command, demoCfg *demo.Config) error {
	theme, err := styles.ParseTheme(rt.cfg.Theme)
	if err != nil {
		return err
	}

	log := logger.Discard()
	if rt.cfg.Log.File != "" {
		file, err := os.OpenFile(rt.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer file.Close()
		log = newLogger(rt.cfg, file)
	}

	opts := tui.Options{Theme: theme, Logger: log}
	if demoCfg != nil {
		opts.Fetcher = demo.NewFetcher(*demoCfg, log)
		opts.Demo = true
	} else {
		client, err := rt.newFetcher(log)
		if err != nil {
			return err
		}
		opts.Fetcher = client
	}

	return rt.runTUI(opts)
}

func parseDemoConfig(preset, scenario string) (demo.Config, error) {
	p, err := demo.ParsePreset(preset)
	if err != nil {
		return demo.Config{}, err
	}
	s, err := demo.ParseScenario(scenario)
	if err != nil {
		return demo.Config{}, err
	}
	return demo.Config{Preset: p, Scenario: s}, nil
}
