package gen

import (
	"resolver-generator/internal/catalog"
	"resolver-generator/internal/diagnostic"
	"resolver-generator/internal/spec"
)

// Run executes both pipeline paths as a pure function of its inputs.
//
// The generation path deduplicates the raw specifications first-wins and
// emits one artifact per surviving key; the diagnostic path independently
// scans the raw specifications per scoping unit. Neither path mutates
// shared state, so callers may memoize on input identity and re-invoke
// whenever the catalog or the specification set changes.
func Run(
	cat *catalog.Catalog,
	specs []spec.Resolver,
	config Config,
) ([]GeneratedFile, diagnostic.Diagnostics, error) {
	diags := diagnostic.CheckDuplicates(specs)

	unique, _ := spec.Deduplicate(specs)

	files, err := NewEmitter(config).Emit(cat, unique)

	return files, diags, err
}
