package spec

import "strings"

// Resolver is one declared request to generate a property resolver.
type Resolver struct {
	// Property is the target property name, in its declared casing.
	Property string
	// Include lists namespace (package path) prefixes; when non-empty, a
	// type must match at least one of them.
	Include []string
	// Exclude lists namespace prefixes a type must match none of.
	Exclude []string
	// Unit is the scoping unit this specification was declared in: a source
	// file path or a manifest file path.
	Unit string
	// Location is the declaration site, "file:line:column".
	Location string
}

// Key returns the case-insensitive grouping key for this specification.
func (r Resolver) Key() string {
	return strings.ToLower(r.Property)
}

// ArtifactName returns the name of the generated dispatch artifact,
// using this specification's declared casing.
func (r Resolver) ArtifactName() string {
	return r.Property + "Resolver"
}

// MethodName returns the name of the generated extraction method.
func (r Resolver) MethodName() string {
	return "Get" + r.Property
}

// trimBlank drops absent-value entries from a namespace prefix list.
// No other normalization is applied; prefixes are matched exactly as
// declared.
func trimBlank(list []string) []string {
	var out []string
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		out = append(out, s)
	}

	return out
}
