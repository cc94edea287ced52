// Package match finds the closest known name for a misspelled one.
// It backs the "did you mean" suggestions attached to unknown-attribute
// diagnostics.
package match
