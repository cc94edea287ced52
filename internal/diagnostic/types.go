package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"sort"
	"strings"

	"fortio.org/safecast"

	"daftgen/internal/common"
)

// Code is a unique identifier for a class of diagnostic.
type Code string

// Diagnostic codes.
const (
	CodeUnknownAttribute  Code = "DAFT001"
	CodeDuplicate         Code = "DAFT002"
	CodeConflict          Code = "DAFT003"
	CodeMalformed         Code = "DAFT004"
	CodeMisplaced         Code = "DAFT005"
	CodeStructDuplicate   Code = "DAFT006"
	CodeNotDiffable       Code = "DAFT007"
	CodeUnsupported       Code = "DAFT008"
	CodeSchema            Code = "DAFT009"
	CodeGeneratedInternal Code = "DAFT010"
)

// Position is a location in a source file. Line and Column are 1-based; a
// zero Line means the position is unknown.
type Position struct {
	File   string
	Line   uint32
	Column uint32
}

// PositionFrom converts a go/token position.
func PositionFrom(p token.Position) Position {
	return NewPosition(p.Filename, p.Line, p.Column)
}

// NewPosition builds a Position, clamping out-of-range values to unknown.
func NewPosition(file string, line, column int) Position {
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		l = 0
	}

	c, err := safecast.Conv[uint32](column)
	if err != nil {
		c = 0
	}

	return Position{File: file, Line: l, Column: c}
}

// IsValid reports whether the position carries a line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Offset returns p moved n columns to the right.
func (p Position) Offset(n int) Position {
	if !p.IsValid() || n <= 0 {
		return p
	}

	d, err := safecast.Conv[uint32](n)
	if err != nil {
		return p
	}

	p.Column += d

	return p
}

// String returns file:line:col, omitting unknown parts.
func (p Position) String() string {
	switch {
	case p.File == "" && !p.IsValid():
		return "-"
	case !p.IsValid():
		return p.File
	case p.Column == 0:
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code Code
	// Message is the human-readable description.
	Message string
	// Pos is the exact location of the offending syntax.
	Pos Position
	// TypeName identifies which declaration this relates to (if any).
	TypeName string
	// FieldPath identifies which field or variant this relates to (if any).
	FieldPath string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos.IsValid() || d.Pos.File != "" {
		prefix = append(prefix, d.Pos.String())
	}

	if d.TypeName != "" {
		prefix = append(prefix, "["+d.TypeName+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics holds all diagnostic information from a generator run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddAll files every diagnostic of list.
func (d *Diagnostics) AddAll(list []Diagnostic) {
	for _, diag := range list {
		d.Add(diag)
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code Code, pos Position, typeName, message string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Pos:      pos,
		TypeName: typeName,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every diagnostic ordered by file, line and column, then by
// severity (errors first). Diagnostics at the same place keep their order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	sort.SliceStable(all, func(i, j int) bool {
		pi, pj := all[i].Pos, all[j].Pos
		if pi.File != pj.File {
			return pi.File < pj.File
		}

		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}

		if pi.Column != pj.Column {
			return pi.Column < pj.Column
		}

		return all[i].Severity > all[j].Severity
	})

	return all
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
