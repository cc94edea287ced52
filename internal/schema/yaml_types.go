package schema

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a string", node.Line)
	}

	*s = Scalar{
		Value:  node.Value,
		Line:   node.Line,
		Column: node.Column,
		Quoted: node.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) != 0,
	}

	return nil
}

// ContentColumn is the column of the first byte of Value.
func (s Scalar) ContentColumn() int {
	if s.Quoted {
		return s.Column + 1
	}

	return s.Column
}

// UnmarshalYAML accepts a single attribute or a list of attributes.
func (a *AttrList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s Scalar
		if err := node.Decode(&s); err != nil {
			return err
		}

		*a = AttrList{s}

		return nil

	case yaml.SequenceNode:
		var list []Scalar
		if err := node.Decode(&list); err != nil {
			return err
		}

		*a = list

		return nil

	default:
		return fmt.Errorf("line %d: expected attribute or list of attributes", node.Line)
	}
}

// UnmarshalYAML accepts "path" or {alias: x, path: y}.
func (i *Import) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*i = Import{Path: node.Value}

		return nil

	case yaml.MappingNode:
		if err := knownKeys(node, "alias", "path"); err != nil {
			return err
		}

		type plain Import

		return node.Decode((*plain)(i))

	default:
		return fmt.Errorf("line %d: expected import path or {alias, path}", node.Line)
	}
}

// UnmarshalYAML accepts "T" or {name: T, constraint: comparable}.
func (p *Param) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s Scalar
		if err := node.Decode(&s); err != nil {
			return err
		}

		*p = Param{Name: s}

		return nil

	case yaml.MappingNode:
		if err := knownKeys(node, "name", "constraint", "lifetime"); err != nil {
			return err
		}

		type plain Param

		return node.Decode((*plain)(p))

	default:
		return fmt.Errorf("line %d: expected parameter name or {name, constraint}", node.Line)
	}
}

// UnmarshalYAML records where the declaration starts.
func (t *TypeDef) UnmarshalYAML(node *yaml.Node) error {
	err := knownKeys(node, "name", "kind", "doc", "params", "attrs", "non_exhaustive", "fields", "variants")
	if err != nil {
		return err
	}

	type plain TypeDef
	if err := node.Decode((*plain)(t)); err != nil {
		return err
	}

	t.Line, t.Column = node.Line, node.Column

	return nil
}

// UnmarshalYAML records where the field starts.
func (f *FieldDef) UnmarshalYAML(node *yaml.Node) error {
	if err := knownKeys(node, "name", "type", "attrs"); err != nil {
		return err
	}

	type plain FieldDef
	if err := node.Decode((*plain)(f)); err != nil {
		return err
	}

	f.Line, f.Column = node.Line, node.Column

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *VariantDef) UnmarshalYAML(node *yaml.Node) error {
	if err := knownKeys(node, "name", "kind", "fields", "attrs"); err != nil {
		return err
	}

	type plain VariantDef

	return node.Decode((*plain)(v))
}

// knownKeys rejects mapping keys outside keys. Decoders created by
// yaml.Node.Decode do not inherit KnownFields, so types with their own
// UnmarshalYAML check themselves.
func knownKeys(node *yaml.Node, keys ...string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		if !slices.Contains(keys, k.Value) {
			return fmt.Errorf("line %d: field %s not found", k.Line, k.Value)
		}
	}

	return nil
}
