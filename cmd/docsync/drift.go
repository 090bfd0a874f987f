package main

import (
	"errors"

	"github.com/spf13/cobra"

	"docsync/internal/drift"
)

var (
	driftUpdate bool
	driftJobs   int
)

func init() {
	driftCmd.Flags().BoolVar(&driftUpdate, "update", false, "rewrite the manifest instead of checking")
	driftCmd.Flags().IntVar(&driftJobs, "jobs", 0, "max parallel hashing jobs (0=auto)")
}

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Check diagram files against the stored manifest",
	Args:  cobra.NoArgs,
	RunE:  withEnv(runDrift),
}

func runDrift(cmd *cobra.Command, e *env) error {
	opts := drift.Options{
		Root:      e.cfg.Root,
		Docs:      e.cfg.Drift.Docs,
		Extension: e.cfg.Drift.Extension,
		Manifest:  e.cfg.Drift.Manifest,
		Jobs:      driftJobs,
	}

	if driftUpdate {
		done := e.timer.Track("update")
		m, err := drift.Update(cmd.Context(), opts)
		done("")
		if err != nil {
			return err
		}
		if !e.quiet {
			e.out.DriftUpdated(e.cfg.Drift.Manifest, len(m))
		}
		return nil
	}

	done := e.timer.Track("check")
	r, err := drift.Check(cmd.Context(), opts)
	done("")
	if errors.Is(err, drift.ErrManifestMissing) {
		e.out.DriftMissing()
		return errViolation
	}
	if err != nil {
		return err
	}
	if !r.Clean() {
		e.out.Drift(r)
		return errViolation
	}
	if !e.quiet {
		e.out.Drift(r)
	}
	return nil
}
