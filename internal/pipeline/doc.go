// Package pipeline runs declarations through attribute parsing, position
// checks, synthesis and file assembly.
//
// Each declaration owns its diagnostic store. A declaration with errors
// contributes only its diagnostics (and, for schema input, its original
// declaration) to the output; the other declarations of the same file are
// unaffected.
package pipeline
