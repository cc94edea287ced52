// Package config reads daftgen.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"daftgen/internal/gen"
)

// FileName is the name of the configuration file looked up from the
// working directory upwards.
const FileName = "daftgen.toml"

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Diagnostic output formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config is the contents of daftgen.toml.
type Config struct {
	Generate    Generate    `toml:"generate"`
	Diagnostics Diagnostics `toml:"diagnostics"`

	// Path is the file the configuration was read from, empty when no
	// file was found.
	Path string `toml:"-"`
}

// Generate configures generated code.
type Generate struct {
	// Runtime is the import path of the runtime package.
	Runtime string `toml:"runtime"`
	// RuntimeName is the name generated code refers to the runtime by.
	RuntimeName  string `toml:"runtime_name"`
	Suffix       string `toml:"suffix"`
	OutputSuffix string `toml:"output_suffix"`
	Comments     bool   `toml:"comments"`
}

// Diagnostics configures how diagnostics are printed.
type Diagnostics struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
	// Max limits printed diagnostics; 0 prints all of them.
	Max int `toml:"max"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	g := gen.DefaultGeneratorConfig()

	return Config{
		Generate: Generate{
			Runtime:      g.RuntimePath,
			RuntimeName:  g.RuntimeName,
			Suffix:       g.Suffix,
			OutputSuffix: g.OutputSuffix,
			Comments:     g.GenerateComments,
		},
		Diagnostics: Diagnostics{
			Color:  ColorAuto,
			Format: FormatPretty,
			Max:    100,
		},
	}
}

// Find looks for daftgen.toml in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}

// Load finds and reads the configuration for startDir. Values missing from
// the file keep their defaults.
func Load(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}

	if !ok {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile reads the configuration at path over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Generate.Runtime) == "" {
		errs = append(errs, errors.New("[generate].runtime must not be empty"))
	}

	if c.Generate.Suffix == "" {
		errs = append(errs, errors.New("[generate].suffix must not be empty"))
	}

	if !strings.HasSuffix(c.Generate.OutputSuffix, ".go") {
		errs = append(errs, fmt.Errorf("[generate].output_suffix must end in .go, got %q", c.Generate.OutputSuffix))
	}

	switch c.Diagnostics.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		errs = append(errs, fmt.Errorf("[diagnostics].color must be auto, on or off, got %q", c.Diagnostics.Color))
	}

	switch c.Diagnostics.Format {
	case FormatPretty, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("[diagnostics].format must be pretty or json, got %q", c.Diagnostics.Format))
	}

	if c.Diagnostics.Max < 0 {
		errs = append(errs, errors.New("[diagnostics].max must not be negative"))
	}

	return errors.Join(errs...)
}

// GeneratorConfig converts the [generate] table.
func (c Config) GeneratorConfig() gen.GeneratorConfig {
	g := gen.DefaultGeneratorConfig()

	g.RuntimePath = c.Generate.Runtime
	g.Suffix = c.Generate.Suffix
	g.OutputSuffix = c.Generate.OutputSuffix
	g.GenerateComments = c.Generate.Comments

	if c.Generate.RuntimeName != "" {
		g.RuntimeName = c.Generate.RuntimeName
	}

	return g
}
