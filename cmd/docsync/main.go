package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"docsync/internal/version"
)

// errViolation marks a failure whose details were already printed
// (stale artifacts, drift, contract violations).
var errViolation = errors.New("violation")

var rootCmd = &cobra.Command{
	Use:   "docsync",
	Short: "Keep architecture diagrams in sync with the language source",
	Long: `docsync extracts the token taxonomy and the Pratt precedence table from the
lexer source, splices them into the syntax pipeline diagram, writes the
statistics report, and checks diagram drift and the web IDE frontend contract.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(syntaxCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(driftCmd)
	rootCmd.AddCommand(contractCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.String("root", "", "repository root (default: directory of the config file, else the working directory)")
	pf.String("config", "", "config file (default: nearest docsync.toml or docsync.yaml)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of tolerated-skip diagnostics to keep")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	pf.Duration("trace-heartbeat", 0, "heartbeat interval for long-running commands (0 disables)")
}

// main registers the version and runs the root command; any error exits 1.
func main() {
	rootCmd.Version = version.Version

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errViolation) {
			fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint("error: ")+err.Error())
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
