package catalog

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedModule

// Indexer loads Go packages and builds a type catalog.
type Indexer struct {
	catalog *Catalog
	// pkgs keeps the loaded packages so the specification collector can
	// scan their syntax trees without a second load.
	pkgs []*packages.Package
}

// NewIndexer creates a new Indexer.
func NewIndexer() *Indexer {
	return &Indexer{
		catalog: &Catalog{},
	}
}

// Load loads the specified packages and builds the catalog.
// Patterns are standard Go package patterns (e.g., "./store",
// "resolver-generator/warehouse").
func (x *Indexer) Load(patterns ...string) (*Catalog, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	x.pkgs = pkgs

	for _, pkg := range pkgs {
		if x.catalog.ModulePath == "" && pkg.Module != nil {
			x.catalog.ModulePath = pkg.Module.Path
		}

		x.indexPackage(pkg)
	}

	return x.catalog, nil
}

// Catalog returns the current catalog.
func (x *Indexer) Catalog() *Catalog {
	return x.catalog
}

// Packages returns the packages loaded by the last Load call.
func (x *Indexer) Packages() []*packages.Package {
	return x.pkgs
}

// indexPackage extracts catalog types from a loaded package.
// scope.Names() is sorted, which keeps the catalog order stable across
// repeated loads of an unchanged tree.
func (x *Indexer) indexPackage(pkg *packages.Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		typeName, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}

		if !typeName.Exported() {
			continue
		}

		entry := x.describeType(pkg.PkgPath, typeName)
		if entry == nil {
			continue
		}

		x.catalog.Types = append(x.catalog.Types, entry)
	}
}

// describeType returns a catalog entry for the given type name, or nil when
// the type does not belong in the catalog.
func (x *Indexer) describeType(pkgPath string, typeName *types.TypeName) *Type {
	named, ok := typeName.Type().(*types.Named)
	if !ok {
		// Aliases resolve to types declared elsewhere; indexing them would
		// duplicate dispatch entries under a second name.
		return nil
	}

	// Dispatch by runtime type needs closed, instantiable types, so
	// parameterized types are excluded even if their fields would match.
	if named.TypeParams().Len() > 0 {
		return nil
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	entry := &Type{
		ID: TypeID{PkgPath: pkgPath, Name: typeName.Name()},
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		if !field.Exported() {
			continue
		}

		entry.Properties = append(entry.Properties, Property{
			Name:     field.Name(),
			Nullable: isNullable(field.Type()),
			Pointer:  isPointer(field.Type()),
		})
	}

	// Types with no readable public properties have nothing to resolve.
	if len(entry.Properties) == 0 {
		return nil
	}

	return entry
}

// isNullable classifies a field type as able to hold an absent value.
// Two independent signals mark a property nullable: a pointer wrapping the
// value, or the type itself being a nilable reference kind.
func isNullable(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Pointer, *types.Interface, *types.Map,
		*types.Slice, *types.Chan, *types.Signature:
		return true
	default:
		return false
	}
}

func isPointer(t types.Type) bool {
	_, ok := t.Underlying().(*types.Pointer)
	return ok
}
