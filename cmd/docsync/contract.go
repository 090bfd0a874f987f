package main

import (
	"errors"

	"github.com/spf13/cobra"

	"docsync/internal/contract"
)

var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Check the web IDE frontend artifact for required and forbidden snippets",
	Args:  cobra.NoArgs,
	RunE:  withEnv(runContract),
}

func runContract(cmd *cobra.Command, e *env) error {
	done := e.timer.Track("check")
	r, err := contract.Check(cmd.Context(), e.cfg)
	done("")

	var missing *contract.MissingFileError
	if errors.As(err, &missing) {
		e.out.Failure(err)
		return errViolation
	}
	if err != nil {
		return err
	}
	if !r.OK() {
		e.out.Contract(r)
		return errViolation
	}
	if !e.quiet {
		e.out.Contract(r)
	}
	return nil
}
