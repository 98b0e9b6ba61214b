package diagnostic

import (
	"fmt"

	"resolver-generator/internal/common"
	"resolver-generator/internal/spec"
)

// DuplicateResolverCode is the fixed code of the duplicate-declaration
// diagnostic.
const DuplicateResolverCode = "RES001"

// CheckDuplicates scans resolver specifications one scoping unit (source
// file or manifest) at a time and reports every occurrence of a
// case-insensitive property-name key after the first within that unit.
//
// Each diagnostic points at the offending occurrence's declaration site,
// never at the first occurrence, and carries the key in first-seen casing.
// Specifications with the same key declared in different units are not
// reported here; the generation path still collapses them globally.
func CheckDuplicates(specs []spec.Resolver) Diagnostics {
	var diags Diagnostics

	for _, unit := range unitsInOrder(specs) {
		diags.Merge(checkUnit(unit))
	}

	return diags
}

// unitsInOrder partitions specifications by scoping unit, keeping units in
// first-encounter order and specifications in declaration order within each
// unit.
func unitsInOrder(specs []spec.Resolver) [][]spec.Resolver {
	var units [][]spec.Resolver

	index := make(map[string]int)

	for _, r := range specs {
		i, ok := index[r.Unit]
		if !ok {
			i = len(units)
			index[r.Unit] = i
			units = append(units, nil)
		}

		units[i] = append(units[i], r)
	}

	return units
}

// checkUnit builds the per-unit case-insensitive multimap and reports the
// surplus occurrences. The multimap is local to this call, so units may be
// checked concurrently against an external append-only sink.
func checkUnit(unit []spec.Resolver) Diagnostics {
	var diags Diagnostics

	byKey := make(map[string][]spec.Resolver)

	var order []string

	for _, r := range unit {
		key := r.Key()
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}

		byKey[key] = append(byKey[key], r)
	}

	for _, key := range order {
		occurrences := byKey[key]
		if !common.IsMultiple(occurrences) {
			continue
		}

		first, _ := common.First(occurrences)
		for _, dup := range occurrences[1:] {
			diags.AddError(
				DuplicateResolverCode,
				fmt.Sprintf("Property resolver for '%s' is already defined", first.Property),
				first.Property,
				dup.Location,
			)
		}
	}

	return diags
}
