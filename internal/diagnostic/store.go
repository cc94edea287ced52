package diagnostic

import "fmt"

// Store accumulates the diagnostics of one declaration. It is created once
// per declaration and consumed once with Finish.
type Store struct {
	items    []Diagnostic
	finished bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Sink returns the root sink of the store.
func (s *Store) Sink() *Sink {
	return &Sink{store: s}
}

// Finish consumes the store and returns every pushed diagnostic in push
// order. Pushing after Finish panics.
func (s *Store) Finish() []Diagnostic {
	s.finished = true
	items := s.items
	s.items = nil

	return items
}

// Sink is a handle pushing into a Store. Children created with Child write
// into the same store and count towards the error state of every ancestor.
type Sink struct {
	store  *Store
	parent *Sink
	errors int
}

// Child returns a sink that reports into the same store. Its HasErrors only
// covers diagnostics pushed through it and its own children.
func (k *Sink) Child() *Sink {
	return &Sink{store: k.store, parent: k}
}

// Push appends d to the store.
func (k *Sink) Push(d Diagnostic) {
	if k.store.finished {
		panic("diagnostic: push after Finish")
	}

	k.store.items = append(k.store.items, d)

	if d.Severity != DiagnosticError {
		return
	}

	for s := k; s != nil; s = s.parent {
		s.errors++
	}
}

// Errorf pushes an error diagnostic at pos.
func (k *Sink) Errorf(code Code, pos Position, format string, args ...any) {
	k.Push(Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	})
}

// HasErrors reports whether an error was pushed through this sink or any
// of its children.
func (k *Sink) HasErrors() bool {
	return k.errors > 0
}
