package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"docsync/internal/config"
	"docsync/internal/observ"
	"docsync/internal/trace"
	"docsync/internal/ui"
)

// env is what every subcommand needs after the root flags are applied.
type env struct {
	cfg      *config.Config
	out      *ui.Printer // stdout
	errOut   *ui.Printer // stderr
	timer    *observ.Timer
	quiet    bool
	useColor bool
	maxDiag  int
}

// withEnv wraps a subcommand body with tracing, config loading and the
// --timings summary. Retained trace events are dumped when run fails.
func withEnv(run func(cmd *cobra.Command, e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		tracer, cleanup, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}

		err = run(cmd, e)
		if err != nil {
			if dumpErr := trace.DumpOnFailure(tracer, cmd.ErrOrStderr()); dumpErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", dumpErr)
			}
		}
		if e.timer != nil {
			fmt.Fprint(cmd.ErrOrStderr(), e.timer.Summary())
		}
		return err
	}
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	flags := cmd.Root().PersistentFlags()
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := readColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiag, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	rootFlag, err := flags.GetString("root")
	if err != nil {
		return nil, fmt.Errorf("failed to get root flag: %w", err)
	}
	configFlag, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := loadConfig(rootFlag, configFlag)
	if err != nil {
		return nil, err
	}

	e := &env{
		cfg:      cfg,
		out:      ui.NewPrinter(cmd.OutOrStdout(), useColor),
		errOut:   ui.NewPrinter(cmd.ErrOrStderr(), useColor),
		quiet:    quiet,
		useColor: useColor,
		maxDiag:  maxDiag,
	}
	if timings {
		e.timer = observ.NewTimer()
	}
	return e, nil
}

// loadConfig applies --config and --root. An explicit --root always wins
// over the config file's directory.
func loadConfig(rootFlag, configFlag string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case configFlag != "":
		cfg, err = config.Load(configFlag)
	case rootFlag != "":
		cfg, _, err = config.Discover(rootFlag)
	default:
		var wd string
		wd, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		cfg, _, err = config.Discover(wd)
	}
	if err != nil {
		return nil, err
	}
	if rootFlag != "" {
		abs, err := filepath.Abs(rootFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve --root: %w", err)
		}
		cfg.Root = abs
	}
	return cfg, nil
}
