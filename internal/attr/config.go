package attr

import (
	"fmt"
	"strings"

	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
	"daftgen/internal/match"
)

//go:generate go tool stringer -type=FieldMode,StructMode -output=config_string.go

// FieldMode is how a single field is diffed.
type FieldMode int

const (
	// FieldDefault recurses into the field type's own Diff.
	FieldDefault FieldMode = iota
	// FieldLeaf pairs the before and after values without recursing.
	FieldLeaf
	// FieldIgnore drops the field from the companion and from the diff.
	FieldIgnore
)

// StructMode is how a whole declaration is diffed.
type StructMode int

const (
	StructDefault StructMode = iota
	// StructLeaf diffs the whole value as one leaf; no companion is built.
	StructLeaf
)

// FieldConfig is the validated configuration of one field.
type FieldConfig struct {
	Mode FieldMode
}

// StructConfig is the validated configuration of one declaration.
type StructConfig struct {
	Mode StructMode
}

var (
	fieldNames  = []string{NameLeaf, NameIgnore}
	structNames = []string{NameLeaf}
)

// ParseFieldConfig parses the daft struct-tag attributes of one field.
// ok is false when any error was pushed for this field; the field must
// then be left out of the generated code without further reporting.
//
// A mode repeated several times yields one duplicate error, not one per
// repetition.
func ParseFieldConfig(attrs []decl.Attr, sink *diagnostic.Sink) (cfg FieldConfig, ok bool) {
	errs := sink.Child()
	mode := FieldDefault
	reported := map[FieldMode]bool{}

	transition := func(it Item, want FieldMode) {
		switch mode {
		case FieldDefault:
			mode = want
		case want:
			if !reported[want] {
				reported[want] = true

				errs.Errorf(diagnostic.CodeDuplicate, it.Pos, "%s:%q specified multiple times", Namespace, it.Name)
			}
		default:
			errs.Errorf(diagnostic.CodeConflict, it.Pos, "%s:%q conflicts with other attributes", Namespace, it.Name)
		}
	}

	for _, a := range attrs {
		items, serr := ParseItems(a)
		for _, it := range items {
			switch it.Name {
			case NameLeaf:
				transition(it, FieldLeaf)
			case NameIgnore:
				transition(it, FieldIgnore)
			default:
				errs.Push(unknown(it, fieldNames))
			}
		}

		if serr != nil {
			errs.Errorf(diagnostic.CodeMalformed, serr.Pos, "%s", serr.Message)
		}
	}

	if errs.HasErrors() {
		return FieldConfig{}, false
	}

	return FieldConfig{Mode: mode}, true
}

// ParseStructConfig parses the //daft: directives of a declaration. Only
// leaf is accepted. A repeated leaf is reported after every other error
// found in attrs.
func ParseStructConfig(attrs []decl.Attr, sink *diagnostic.Sink) (cfg StructConfig, ok bool) {
	errs := sink.Child()
	mode := StructDefault

	var dup *Item

	for _, a := range attrs {
		items, serr := ParseItems(a)
		for _, it := range items {
			switch it.Name {
			case NameDiffable:
			case NameLeaf:
				if mode == StructLeaf {
					if dup == nil {
						dup = &it
					}

					continue
				}

				mode = StructLeaf
			default:
				errs.Push(unknown(it, structNames))
			}
		}

		if serr != nil {
			errs.Errorf(diagnostic.CodeMalformed, serr.Pos, "%s", serr.Message)
		}
	}

	if dup != nil {
		errs.Errorf(diagnostic.CodeStructDuplicate, dup.Pos, "//%s:%s specified multiple times", Namespace, dup.Name)
	}

	if errs.HasErrors() {
		return StructConfig{}, false
	}

	return StructConfig{Mode: mode}, true
}

func unknown(it Item, supported []string) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     diagnostic.CodeUnknownAttribute,
		Message:  fmt.Sprintf("unknown attribute (supported attributes: %s)", strings.Join(supported, ", ")),
		Pos:      it.Pos,
	}

	if s, ok := match.Suggest(it.Name, supported); ok {
		d.Suggestions = append(d.Suggestions, fmt.Sprintf("did you mean %q?", s))
	}

	return d
}
