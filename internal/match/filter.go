package match

import (
	"strings"

	"resolver-generator/internal/catalog"
	"resolver-generator/internal/spec"
)

// Entry is one dispatch entry: a catalog type paired with its matched
// property.
type Entry struct {
	Type     *catalog.Type
	Property catalog.Property
}

// Filter returns the dispatch entries for one specification, in catalog
// traversal order. A type is included iff it has a property whose name
// equals the specification's property case-insensitively and its package
// path passes the namespace filters.
func Filter(r spec.Resolver, cat *catalog.Catalog) []Entry {
	var entries []Entry

	for _, t := range cat.Types {
		if !passesNamespaceFilters(t.PkgPath(), r.Include, r.Exclude) {
			continue
		}

		prop, ok := propertyNamed(t, r.Property)
		if !ok {
			continue
		}

		entries = append(entries, Entry{Type: t, Property: prop})
	}

	return entries
}

// propertyNamed returns the first property of t whose name matches name
// case-insensitively.
func propertyNamed(t *catalog.Type, name string) (catalog.Property, bool) {
	want := strings.ToLower(name)
	for _, p := range t.Properties {
		if strings.ToLower(p.Name) == want {
			return p, true
		}
	}

	return catalog.Property{}, false
}

// passesNamespaceFilters applies both prefix rules. An empty include list
// means "no include restriction", not "match nothing". Both rules apply:
// a type must satisfy the include rule and the exclude rule.
func passesNamespaceFilters(pkgPath string, include, exclude []string) bool {
	if len(include) > 0 && !hasAnyPrefix(pkgPath, include) {
		return false
	}

	if hasAnyPrefix(pkgPath, exclude) {
		return false
	}

	return true
}

// hasAnyPrefix is a raw string-prefix test, not a path-segment test.
func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}

	return false
}
