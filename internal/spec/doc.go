// Package spec provides resolver specification collection and first-wins
// deduplication.
//
// Specifications come from two declaration surfaces, gathered in order:
//
//  1. Source directives in the loaded packages:
//     //resolver:generate AccountId include=app/domain exclude=app/infra
//  2. Entries of a YAML manifest file.
//
// Every specification keeps its declaration site (file, line, column) so the
// duplicate diagnostic engine can point at the exact offending occurrence.
//
// Specifications sharing a case-insensitive property-name key collapse to the
// first-seen one for generation; the surplus occurrences are exposed for
// diagnostics.
package spec
