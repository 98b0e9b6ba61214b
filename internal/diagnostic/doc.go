// Package diagnostic provides structured errors and warnings for the
// resolver generator, plus the duplicate-declaration engine.
//
// Key capabilities:
//   - Located diagnostics with fixed codes and severities
//   - Per-scoping-unit duplicate resolver detection
//   - Aggregation and error conversion for CLI exit handling
package diagnostic
