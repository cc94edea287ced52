package schema

// File is the root of a YAML schema file.
type File struct {
	// Package is the package name of the generated file.
	Package string `yaml:"package"`

	// Imports are made available to field types.
	Imports []Import `yaml:"imports,omitempty"`

	Types []TypeDef `yaml:"types"`
}

// Import is an import path with an optional alias. It is written either as
// a plain path or as {alias: x, path: y}.
type Import struct {
	Alias string `yaml:"alias,omitempty"`
	Path  string `yaml:"path"`
}

// TypeDef is one declaration.
type TypeDef struct {
	Name Scalar `yaml:"name"`

	// Kind is one of struct, tuple, unit, enum or union.
	Kind Scalar `yaml:"kind"`

	Doc string `yaml:"doc,omitempty"`

	Params []Param `yaml:"params,omitempty"`

	// Attrs are declaration-level daft attributes, e.g. "leaf".
	Attrs AttrList `yaml:"attrs,omitempty"`

	NonExhaustive bool `yaml:"non_exhaustive,omitempty"`

	// Fields of structs, tuples and unions.
	Fields []FieldDef `yaml:"fields,omitempty"`

	// Variants of enums.
	Variants []VariantDef `yaml:"variants,omitempty"`

	// Line and Column locate the declaration in the schema file.
	Line, Column int `yaml:"-"`
}

// Param is a type or lifetime parameter. A plain string is a type
// parameter constrained by any.
type Param struct {
	Name       Scalar `yaml:"name"`
	Constraint Scalar `yaml:"constraint,omitempty"`
	// Lifetime parameters have no Go counterpart and are dropped from the
	// output.
	Lifetime bool `yaml:"lifetime,omitempty"`
}

// FieldDef is one field. Tuple fields have no name.
type FieldDef struct {
	Name  Scalar   `yaml:"name,omitempty"`
	Type  Scalar   `yaml:"type"`
	Attrs AttrList `yaml:"attrs,omitempty"`

	Line, Column int `yaml:"-"`
}

// VariantDef is one enum variant.
type VariantDef struct {
	Name Scalar `yaml:"name"`

	// Kind is unit (the default), tuple or struct.
	Kind   Scalar     `yaml:"kind,omitempty"`
	Fields []FieldDef `yaml:"fields,omitempty"`
	Attrs  AttrList   `yaml:"attrs,omitempty"`
}

// Scalar is a string remembering where it was written.
type Scalar struct {
	Value  string
	Line   int
	Column int
	// Quoted scalars start one column after Column.
	Quoted bool
}

// AttrList is a list of attributes that can be unmarshaled from a single
// string or a list.
type AttrList []Scalar
