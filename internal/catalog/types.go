package catalog

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "resolver-generator/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Property describes one exported, readable field of a catalog type.
type Property struct {
	// Name is the Go field name.
	Name string
	// Nullable is true when the field can hold an absent value: a pointer
	// (nullable-wrapped value) or any other nilable reference kind
	// (interface, map, slice, chan, func).
	Nullable bool
	// Pointer is true for pointer fields; extraction dereferences them
	// after the nil check. Other nilable kinds are used as-is.
	Pointer bool
}

// Type describes one concrete struct type in the catalog.
type Type struct {
	ID         TypeID
	Properties []Property
}

// PkgPath returns the type's package import path (its namespace path for
// prefix filtering).
func (t *Type) PkgPath() string {
	return t.ID.PkgPath
}

// Catalog is an immutable, ordered snapshot of all catalog types.
type Catalog struct {
	// Types in deterministic traversal order.
	Types []*Type
	// ModulePath is the module path of the loaded root packages, empty when
	// the loader could not determine one.
	ModulePath string
}

// GetType returns the catalog entry for the given TypeID, or nil.
func (c *Catalog) GetType(id TypeID) *Type {
	for _, t := range c.Types {
		if t.ID == id {
			return t
		}
	}

	return nil
}
