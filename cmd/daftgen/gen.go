package main

import (
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"daftgen/internal/analyze"
	"daftgen/internal/pipeline"
)

var genCmd = &cobra.Command{
	Use:   "gen [packages...]",
	Short: "Generate diff types for Go packages",
	Long: `Load the Go packages matching the patterns (default ".") and write
<package>_daft.go next to each one, with a diff companion for every type
marked //daft:diffable or named with --type.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringSlice("type", nil, "comma-separated type names to generate in addition to //daft:diffable ones")
	genCmd.Flags().StringP("output", "o", "", "output file (only with a single package)")
	genCmd.Flags().Bool("dump", false, "print the extracted declarations before generating")
}

func runGen(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	typeNames, err := cmd.Flags().GetStringSlice("type")
	if err != nil {
		return fmt.Errorf("failed to get type flag: %w", err)
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}

	var outputs []string

	if output != "" {
		abs, err := filepath.Abs(output)
		if err != nil {
			return fmt.Errorf("failed to resolve output path: %w", err)
		}

		outputs = append(outputs, abs)
	}

	units, err := s.loadPackages(args, typeNames, outputs)
	if err != nil {
		return err
	}

	if output != "" {
		if len(units) != 1 {
			return fmt.Errorf("--output needs exactly one package with declarations, got %d", len(units))
		}

		units[0].Filename = output
	}

	if dump {
		dumpUnits(cmd, units)
	}

	outs, err := s.run(cmd.Context(), units)
	if err != nil {
		return err
	}

	return s.finish(outs, true)
}

// loadPackages loads patterns and keeps the packages that have selected
// declarations or diagnostics. outputs are previous output files beyond the
// ones named by the output suffix.
func (s *session) loadPackages(patterns, typeNames, outputs []string) ([]*pipeline.Unit, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	a := analyze.NewAnalyzer(analyze.Options{
		Types:      typeNames,
		SkipSuffix: s.cfg.Generate.OutputSuffix,
		Outputs:    outputs,
	})

	pkgs, err := a.LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	var units []*pipeline.Unit

	for _, p := range pkgs {
		if len(p.Decls) == 0 && len(p.Diagnostics) == 0 {
			s.log.Debug("nothing to generate", "package", p.Path)

			continue
		}

		s.log.Debug("loaded package", "package", p.Path, "dir", p.Dir, "declarations", len(p.Decls))
		units = append(units, p.Unit(s.cfg.Generate.OutputSuffix))
	}

	return units, nil
}

func dumpUnits(cmd *cobra.Command, units []*pipeline.Unit) {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

	for _, u := range units {
		fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n", u.Name)

		for _, d := range u.Decls {
			cfg.Fdump(cmd.OutOrStdout(), d)
		}
	}
}
