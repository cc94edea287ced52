package daft

import (
	"fmt"
	"strings"
)

// StructFormatter builds the String output of a generated diff type with
// named fields: Name{A: x, B: y}.
type StructFormatter struct {
	sb     strings.Builder
	fields int
}

// DebugStruct starts formatting a diff type with named fields.
func DebugStruct(name string) *StructFormatter {
	f := &StructFormatter{}
	f.sb.WriteString(name)
	f.sb.WriteString("{")

	return f
}

// Field appends one named field.
func (f *StructFormatter) Field(name string, value any) *StructFormatter {
	if f.fields > 0 {
		f.sb.WriteString(", ")
	}

	f.fields++
	f.sb.WriteString(name)
	f.sb.WriteString(": ")
	fmt.Fprint(&f.sb, value)

	return f
}

// Finish closes the field list.
func (f *StructFormatter) Finish() string {
	f.sb.WriteString("}")
	return f.sb.String()
}

// FinishNonExhaustive closes the field list with a trailing "..", marking
// that the type may grow fields.
func (f *StructFormatter) FinishNonExhaustive() string {
	if f.fields > 0 {
		f.sb.WriteString(", ")
	}

	f.sb.WriteString("..}")

	return f.sb.String()
}

// TupleFormatter builds the String output of a generated diff type with
// positional fields: Name(x, y).
type TupleFormatter struct {
	sb     strings.Builder
	fields int
}

// DebugTuple starts formatting a diff type with positional fields.
func DebugTuple(name string) *TupleFormatter {
	f := &TupleFormatter{}
	f.sb.WriteString(name)
	f.sb.WriteString("(")

	return f
}

// Field appends one positional field.
func (f *TupleFormatter) Field(value any) *TupleFormatter {
	if f.fields > 0 {
		f.sb.WriteString(", ")
	}

	f.fields++
	fmt.Fprint(&f.sb, value)

	return f
}

// Finish closes the field list.
func (f *TupleFormatter) Finish() string {
	f.sb.WriteString(")")
	return f.sb.String()
}

// FinishNonExhaustive closes the field list with a trailing "..".
func (f *TupleFormatter) FinishNonExhaustive() string {
	if f.fields > 0 {
		f.sb.WriteString(", ")
	}

	f.sb.WriteString("..)")

	return f.sb.String()
}
