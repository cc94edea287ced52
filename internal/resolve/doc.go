// Package resolve decides how a field type is diffed when the field is in
// the default (recursive) mode: which diff type the companion field gets
// and which call produces it.
package resolve
