package diagnostic

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrettyOpts controls Pretty.
type PrettyOpts struct {
	// Color enables ANSI colours.
	Color bool
	// Max limits the number of printed diagnostics; zero means no limit.
	Max int
}

var (
	errorStyle   = []color.Attribute{color.FgRed, color.Bold}
	warningStyle = []color.Attribute{color.FgYellow, color.Bold}
	infoStyle    = []color.Attribute{color.FgCyan}
	posStyle     = []color.Attribute{color.Bold}
	hintStyle    = []color.Attribute{color.FgGreen}
)

// Pretty writes one line per diagnostic:
//
//	<path>:<line>:<col>: error[DAFT001]: <message>
//
// followed by an indented "help:" line per suggestion. opts.Color forces
// colours on even when color.NoColor is set for a non-terminal stdout.
func Pretty(w io.Writer, diags []Diagnostic, opts PrettyOpts) error {
	paint := func(style []color.Attribute, s string) string {
		if !opts.Color {
			return s
		}

		c := color.New(style...)
		c.EnableColor()

		return c.Sprint(s)
	}

	for i, d := range diags {
		if opts.Max > 0 && i >= opts.Max {
			_, err := fmt.Fprintf(w, "... and %d more\n", len(diags)-i)
			return err
		}

		var sev string
		switch d.Severity {
		case DiagnosticError:
			sev = paint(errorStyle, d.Severity.String())
		case DiagnosticWarning:
			sev = paint(warningStyle, d.Severity.String())
		default:
			sev = paint(infoStyle, d.Severity.String())
		}

		if d.Code != "" {
			sev += "[" + string(d.Code) + "]"
		}

		var sb strings.Builder
		sb.WriteString(paint(posStyle, d.Pos.String()))
		sb.WriteString(": ")
		sb.WriteString(sev)
		sb.WriteString(": ")
		sb.WriteString(d.Message)
		sb.WriteString("\n")

		for _, s := range d.Suggestions {
			sb.WriteString("    ")
			sb.WriteString(paint(hintStyle, "help"))
			sb.WriteString(": ")
			sb.WriteString(s)
			sb.WriteString("\n")
		}

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}

type jsonDiagnostic struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code,omitempty"`
	Message     string   `json:"message"`
	File        string   `json:"file,omitempty"`
	Line        uint32   `json:"line,omitempty"`
	Column      uint32   `json:"column,omitempty"`
	Type        string   `json:"type,omitempty"`
	Field       string   `json:"field,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// JSON writes diags as a JSON array.
func JSON(w io.Writer, diags []Diagnostic) error {
	out := make([]jsonDiagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, jsonDiagnostic{
			Severity:    d.Severity.String(),
			Code:        string(d.Code),
			Message:     d.Message,
			File:        d.Pos.File,
			Line:        d.Pos.Line,
			Column:      d.Pos.Column,
			Type:        d.TypeName,
			Field:       d.FieldPath,
			Suggestions: d.Suggestions,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
