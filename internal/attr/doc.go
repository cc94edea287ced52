// Package attr turns raw daft attributes into validated configurations.
//
// Field attributes live in struct tags (`daft:"leaf"`, `daft:"ignore"`);
// declaration attributes are //daft: directive lines in the doc comment.
// Every problem is pushed into a diagnostic.Sink; parsing never stops at
// the first error.
package attr
