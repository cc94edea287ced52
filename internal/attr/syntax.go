package attr

import (
	"fmt"

	"daftgen/internal/decl"
	"daftgen/internal/diagnostic"
)

// Namespace is the struct tag key and directive prefix of daft attributes.
const Namespace = "daft"

// Attribute names.
const (
	NameLeaf   = "leaf"
	NameIgnore = "ignore"
	// NameDiffable opts a declaration in. It is a marker, not an attribute,
	// and is skipped by the parsers.
	NameDiffable = "diffable"
)

// Item is one comma-separated entry of an attribute.
type Item struct {
	Name string
	Pos  diagnostic.Position
}

// SyntaxError is a malformed attribute. Items before it were still parsed.
type SyntaxError struct {
	Pos     diagnostic.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Message
}

// ParseItems splits an attribute into its items. Items are bare
// identifiers; an item followed by a value (leaf=true, leaf("x")) ends
// parsing with a SyntaxError, and that item is still returned.
func ParseItems(a decl.Attr) ([]Item, *SyntaxError) {
	var items []Item

	s := a.Text
	i := 0

	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return items, nil
		}

		start := i
		for i < len(s) && isIdentByte(s[i], i == start) {
			i++
		}

		if i == start {
			return items, &SyntaxError{
				Pos:     a.Pos.Offset(start),
				Message: fmt.Sprintf("expected attribute name, found %q", s[start:start+1]),
			}
		}

		name := s[start:i]
		items = append(items, Item{Name: name, Pos: a.Pos.Offset(start)})

		i = skipSpace(s, i)
		if i >= len(s) {
			return items, nil
		}

		if s[i] != ',' {
			return items, &SyntaxError{
				Pos:     a.Pos.Offset(i),
				Message: fmt.Sprintf("expected `,` after %s (attribute %q takes no value)", name, name),
			}
		}

		i++
	}
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	return i
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	case '0' <= c && c <= '9':
		return !first
	default:
		return false
	}
}
