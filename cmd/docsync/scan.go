package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docsync/internal/driver"
	"docsync/internal/report"
)

var (
	scanFormat  string
	scanExplain bool
)

func init() {
	scanCmd.Flags().StringVar(&scanFormat, "format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().BoolVar(&scanExplain, "explain", false, "print lines the scanners skipped")
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Print the facts extracted from the token source without writing anything",
	Args:  cobra.NoArgs,
	RunE:  withEnv(runScan),
}

func runScan(cmd *cobra.Command, e *env) error {
	format := strings.ToLower(strings.TrimSpace(scanFormat))
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", scanFormat)
	}

	facts, bag, err := driver.Extract(cmd.Context(), driver.Options{
		Config:         e.cfg,
		Timer:          e.timer,
		MaxDiagnostics: e.maxDiag,
	})
	if err != nil {
		return err
	}
	if scanExplain {
		e.errOut.Diagnostics(e.cfg.Syntax.Tokens, bag.Items())
	}

	if format == "json" {
		return report.FormatFactsJSON(cmd.OutOrStdout(), facts)
	}
	return report.FormatFactsPretty(cmd.OutOrStdout(), facts)
}
