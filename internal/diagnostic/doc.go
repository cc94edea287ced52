// Package diagnostic provides positioned errors, warnings and notes for the
// diff generator, and the accumulator that collects them while one
// declaration is processed.
//
// Key capabilities:
//   - Store/Sink: append-only accumulation with child sinks that report
//     into the same store, so every problem in a declaration is reported
//     together instead of stopping at the first one
//   - Codes for every class of attribute misuse
//   - "Did you mean" suggestions for misspelled attribute names
//   - Pretty (optionally coloured) and JSON rendering
package diagnostic
