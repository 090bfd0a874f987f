package main

import (
	"github.com/spf13/cobra"

	"docsync/internal/driver"
)

var (
	syntaxCheck   bool
	syntaxExplain bool
)

func init() {
	syntaxCmd.Flags().BoolVar(&syntaxCheck, "check", false, "do not write; exit 1 when the diagram or report is stale")
	syntaxCmd.Flags().BoolVar(&syntaxExplain, "explain", false, "print lines the scanners skipped")
}

var syntaxCmd = &cobra.Command{
	Use:   "syntax",
	Short: "Regenerate the syntax diagram blocks and the statistics report",
	Args:  cobra.NoArgs,
	RunE:  withEnv(runSyntax),
}

func runSyntax(cmd *cobra.Command, e *env) error {
	opts := driver.Options{Config: e.cfg, Timer: e.timer, MaxDiagnostics: e.maxDiag}

	if syntaxCheck {
		out, err := driver.Check(cmd.Context(), opts)
		if err != nil {
			return err
		}
		explain(e, out)
		if out.UpToDate() {
			if !e.quiet {
				e.out.SyntaxCheck(nil)
			}
			return nil
		}
		e.out.SyntaxCheck(out.Stale)
		return errViolation
	}

	out, err := driver.Syntax(cmd.Context(), opts)
	if err != nil {
		return err
	}
	explain(e, out)
	if !e.quiet {
		written := make([]string, len(out.Written))
		for i, p := range out.Written {
			written[i] = e.cfg.Rel(p)
		}
		e.out.SyntaxWritten(written, out.Stale)
		if len(out.Stale) > 0 && out.Stale[0] == e.cfg.Rel(out.DiagramPath) {
			e.out.DriftReminder()
		}
	}
	return nil
}

func explain(e *env, out *driver.Outcome) {
	if !syntaxExplain || out == nil || out.Bag == nil {
		return
	}
	e.errOut.Diagnostics(e.cfg.Syntax.Tokens, out.Bag.Items())
}
