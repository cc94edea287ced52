package main

import (
	"github.com/spf13/cobra"

	"daftgen/internal/pipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check [packages or schema files...]",
	Short: "Report diagnostics without writing files",
	Long: `Run generation for Go packages and YAML schema files (arguments ending
in .yaml or .yml) and print every diagnostic. Nothing is written; the exit
status is non-zero when an error is reported.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	var patterns, schemas []string

	for _, arg := range args {
		if isSchema(arg) {
			schemas = append(schemas, arg)
		} else {
			patterns = append(patterns, arg)
		}
	}

	var units []*pipeline.Unit

	if len(patterns) > 0 || len(schemas) == 0 {
		pkgUnits, err := s.loadPackages(patterns, nil, nil)
		if err != nil {
			return err
		}

		units = append(units, pkgUnits...)
	}

	if len(schemas) > 0 {
		schemaUnits, err := s.loadSchemas(schemas)
		if err != nil {
			return err
		}

		units = append(units, schemaUnits...)
	}

	outs, err := s.run(cmd.Context(), units)
	if err != nil {
		return err
	}

	if err := s.finish(outs, false); err != nil {
		return err
	}

	s.log.Info("no errors", "units", len(units))

	return nil
}
