package spec

// DuplicateGroup collects all occurrences of one case-insensitive
// property-name key beyond the first.
type DuplicateGroup struct {
	// Key is the case-insensitive grouping key.
	Key string
	// First is the authoritative occurrence; its declared casing names the
	// generated artifact.
	First Resolver
	// Surplus holds every later occurrence, in encounter order. Each one is
	// a candidate for a duplicate diagnostic.
	Surplus []Resolver
}

// Deduplicate collapses specifications sharing a case-insensitive key to the
// first-seen one. It returns the unique specifications in encounter order
// plus, for every key declared more than once, the surplus occurrences.
func Deduplicate(specs []Resolver) ([]Resolver, []DuplicateGroup) {
	var (
		unique []Resolver
		order  []string
	)

	byKey := make(map[string]*DuplicateGroup)

	for _, r := range specs {
		key := r.Key()

		group, seen := byKey[key]
		if !seen {
			unique = append(unique, r)
			byKey[key] = &DuplicateGroup{Key: key, First: r}
			order = append(order, key)

			continue
		}

		group.Surplus = append(group.Surplus, r)
	}

	var dups []DuplicateGroup
	for _, key := range order {
		group := byKey[key]
		if len(group.Surplus) == 0 {
			continue
		}

		dups = append(dups, *group)
	}

	return unique, dups
}
