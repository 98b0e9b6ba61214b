// Package gen provides deterministic Go code generation for property
// resolver artifacts.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Codegen patterns:
//   - Closed type-switch dispatch in catalog traversal order
//   - Direct stringification for always-present properties
//   - Nil-checked extraction for nullable properties (with dereference
//     for pointer fields)
//   - Empty-dispatch artifacts for keys with no matching type, so the
//     generated symbol stays stable
package gen
