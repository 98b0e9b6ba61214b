// Package catalog provides package loading and type catalog extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build a flat,
// ordered snapshot of the concrete struct types visible to the resolver
// pipeline and their exported fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - Type: one catalog entry with its ordered properties
//   - Property: field name plus nullability classification
//
// Traversal order is stable across repeated loads of an unchanged tree:
// packages in load-result order, type names in the sorted order returned
// by go/types scopes, fields in declaration order. Generated dispatch
// tables inherit this order, so it must not change casually.
package catalog
