package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"docsync/internal/driver"
	"docsync/internal/ui"
	"docsync/internal/watch"
)

var (
	watchUI       string
	watchDebounce time.Duration
)

func init() {
	watchCmd.Flags().StringVar(&watchUI, "ui", "auto", "interactive UI (auto|on|off)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet period before a rerun")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rerun the syntax pipeline whenever the token source changes",
	Args:  cobra.NoArgs,
	RunE:  withEnv(runWatch),
}

func runWatch(cmd *cobra.Command, e *env) error {
	mode, err := readUIMode(watchUI)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	tokens := e.cfg.Resolve(e.cfg.Syntax.Tokens)
	opts := driver.Options{Config: e.cfg, Timer: e.timer, MaxDiagnostics: e.maxDiag}

	if !shouldUseTUI(mode) {
		sink := func(ev ui.RunEvent) { e.out.WatchRun(ev) }
		if !e.quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "watching %s (ctrl+c to stop)\n", e.cfg.Syntax.Tokens)
		}
		return watchLoop(ctx, e, tokens, opts, sink)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan ui.RunEvent, 64)
	sink := func(ev ui.RunEvent) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}
	loopErr := make(chan error, 1)
	go func() {
		err := watchLoop(ctx, e, tokens, opts, sink)
		close(events)
		loopErr <- err
	}()

	model := ui.NewWatchModel("watching "+e.cfg.Syntax.Tokens, events)
	program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))
	_, uiErr := program.Run()
	cancel()
	err = <-loopErr
	if uiErr != nil {
		return uiErr
	}
	return err
}

// watchLoop runs the pipeline once, then again after every debounced change.
func watchLoop(ctx context.Context, e *env, tokens string, opts driver.Options, sink func(ui.RunEvent)) error {
	runOnce := func(trigger string) {
		sink(ui.RunEvent{Time: time.Now(), Trigger: trigger, Status: ui.RunStarted})
		out, err := driver.Syntax(ctx, opts)
		ev := ui.RunEvent{Time: time.Now(), Trigger: trigger}
		switch {
		case err != nil:
			ev.Status = ui.RunFailed
			ev.Detail = err.Error()
		case out.UpToDate():
			ev.Status = ui.RunUnchanged
		default:
			ev.Status = ui.RunUpdated
			ev.Detail = strings.Join(out.Stale, ", ")
		}
		sink(ev)
	}

	runOnce(e.cfg.Syntax.Tokens)
	return watch.Run(ctx, watch.Options{Files: []string{tokens}, Debounce: watchDebounce}, func(changed []string) {
		rel := make([]string, len(changed))
		for i, p := range changed {
			rel[i] = e.cfg.Rel(p)
		}
		runOnce(strings.Join(rel, ", "))
	})
}
