package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"daftgen/internal/config"
	"daftgen/internal/diagnostic"
	"daftgen/internal/gen"
	"daftgen/internal/pipeline"
)

// session is the state shared by one command invocation.
type session struct {
	cfg   config.Config
	log   *slog.Logger
	gen   *gen.Generator
	jobs  int
	color bool
	diags io.Writer
}

func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load(".")
	}

	if err != nil {
		return nil, err
	}

	if v, _ := flags.GetString("color"); v != "" {
		cfg.Diagnostics.Color = v
	}

	if v, _ := flags.GetString("format"); v != "" {
		cfg.Diagnostics.Format = v
	}

	if v, _ := flags.GetInt("max-diagnostics"); v != 0 {
		cfg.Diagnostics.Max = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}

	verbose, _ := flags.GetBool("verbose")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	s := &session{
		cfg:   cfg,
		log:   slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})),
		gen:   gen.NewGenerator(cfg.GeneratorConfig()),
		jobs:  jobs,
		diags: cmd.ErrOrStderr(),
	}

	switch cfg.Diagnostics.Color {
	case config.ColorOn:
		s.color = true
	case config.ColorAuto:
		s.color = isTerminal(os.Stderr) && !color.NoColor
	}

	if cfg.Path != "" {
		s.log.Debug("loaded configuration", "path", cfg.Path)
	}

	return s, nil
}

// run generates every unit.
func (s *session) run(ctx context.Context, units []*pipeline.Unit) ([]pipeline.Output, error) {
	outs, err := pipeline.Run(ctx, s.gen, units, s.jobs)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	for _, o := range outs {
		s.log.Debug("generated",
			"unit", o.Unit.Name,
			"declarations", len(o.Results),
			"errors", len(o.Diagnostics.Errors))
	}

	return outs, nil
}

// finish prints the diagnostics of outs in the order they were found and,
// when write is set, writes the generated files. Declarations that failed
// do not stop the others from being written.
func (s *session) finish(outs []pipeline.Output, write bool) error {
	var (
		diags  []diagnostic.Diagnostic
		files  []gen.GeneratedFile
		failed bool
	)

	for _, o := range outs {
		diags = append(diags, o.Unit.Diagnostics...)
		for _, r := range o.Results {
			diags = append(diags, r.Diagnostics...)
		}

		failed = failed || o.Diagnostics.HasErrors()

		if o.File != nil {
			files = append(files, *o.File)
		}
	}

	if err := s.report(diags); err != nil {
		return fmt.Errorf("failed to print diagnostics: %w", err)
	}

	if write && len(files) > 0 {
		if err := gen.WriteFiles(files, "."); err != nil {
			return err
		}

		for _, f := range files {
			s.log.Info("wrote", "file", f.Filename, "bytes", len(f.Content))
		}
	}

	if failed {
		return errDiagnostics
	}

	return nil
}

func (s *session) report(diags []diagnostic.Diagnostic) error {
	if s.cfg.Diagnostics.Format == config.FormatJSON {
		return diagnostic.JSON(s.diags, diags)
	}

	return diagnostic.Pretty(s.diags, diags, diagnostic.PrettyOpts{
		Color: s.color,
		Max:   s.cfg.Diagnostics.Max,
	})
}
