package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"daftgen/internal/pipeline"
	"daftgen/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <file.yaml>...",
	Short: "Generate declarations and diff types from YAML schemas",
	Long: `Read YAML schema files and write, next to each one, a Go file holding
the described declarations together with their diff types.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringP("output", "o", "", "output file (only with a single schema)")
}

func runSchema(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	if output != "" && len(args) != 1 {
		return fmt.Errorf("--output needs exactly one schema file, got %d", len(args))
	}

	units, err := s.loadSchemas(args)
	if err != nil {
		return err
	}

	if output != "" {
		units[0].Filename = output
	}

	outs, err := s.run(cmd.Context(), units)
	if err != nil {
		return err
	}

	return s.finish(outs, true)
}

// loadSchemas reads the schema files in parallel. Each unit writes
// <schema>_daft.go next to its schema.
func (s *session) loadSchemas(paths []string) ([]*pipeline.Unit, error) {
	units := make([]*pipeline.Unit, len(paths))

	var eg errgroup.Group
	if s.jobs > 0 {
		eg.SetLimit(s.jobs)
	}

	for i, path := range paths {
		eg.Go(func() error {
			f, err := schema.LoadFile(path)
			if err != nil {
				return err
			}

			units[i] = f.Unit(path, schemaOutput(path, s.cfg.Generate.OutputSuffix))
			s.log.Debug("loaded schema", "path", path, "declarations", len(units[i].Decls))

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return units, nil
}

func schemaOutput(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}

func isSchema(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
