package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty schema")
		}

		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	for i := range f.Types {
		for j := range f.Types[i].Params {
			p := &f.Types[i].Params[j]
			if p.Constraint.Value == "" && !p.Lifetime {
				p.Constraint = Scalar{Value: "any", Line: p.Name.Line, Column: p.Name.Column}
			}
		}

		for j := range f.Types[i].Variants {
			v := &f.Types[i].Variants[j]
			if v.Kind.Value == "" {
				v.Kind = Scalar{Value: VariantUnit, Line: v.Name.Line, Column: v.Name.Column}
			}
		}
	}
}
