// Package decl is the in-memory model of a type declaration handed to the
// diff generator. Both the Go-source loader (internal/analyze) and the YAML
// schema loader (internal/schema) produce it; nothing downstream mutates it.
package decl
