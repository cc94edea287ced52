// Package main provides the CLI entrypoint for daftgen.
//
// daftgen generates semantic structural diff types for Go declarations:
//   - gen reads Go packages and emits a diff companion for every type
//     marked //daft:diffable or named with --type
//   - schema emits declarations described in YAML together with their diffs
//   - check reports diagnostics without writing anything
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "daftgen",
	Short: "Generate semantic structural diff types for Go declarations",
	Long: `daftgen emits, for each selected declaration, a companion type describing
the difference between two values of it, and the Diff method building it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errDiagnostics is returned by commands that printed error diagnostics.
var errDiagnostics = errors.New("daftgen: errors reported")

func init() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to daftgen.toml (default: searched from the working directory up)")
	pf.String("color", "", "colorize diagnostics (auto|on|off)")
	pf.String("format", "", "output format (pretty|json)")
	pf.Int("max-diagnostics", 0, "maximum number of diagnostics to show (0 keeps daftgen.toml)")
	pf.Int("jobs", 0, "max packages or schema files processed in parallel (0=unlimited)")
	pf.BoolP("verbose", "v", false, "log progress to stderr")
}

func main() {
	rootCmd.Version = buildVersion()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "daftgen:", err)
		}

		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
