package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resolver-generator/internal/spec"
)

func TestCheckDuplicates_ReportsEveryOccurrenceAfterFirst(t *testing.T) {
	specs := []spec.Resolver{
		{Property: "AccountId", Unit: "a.go", Location: "a.go:3:1"},
		{Property: "AccountId", Unit: "a.go", Location: "a.go:9:1"},
		{Property: "AccountId", Unit: "a.go", Location: "a.go:15:1"},
	}

	diags := CheckDuplicates(specs)

	require.Len(t, diags.Errors, 2)
	assert.Equal(t, "a.go:9:1", diags.Errors[0].Location)
	assert.Equal(t, "a.go:15:1", diags.Errors[1].Location)

	for _, d := range diags.Errors {
		assert.Equal(t, SeverityError, d.Severity)
		assert.Equal(t, DuplicateResolverCode, d.Code)
		assert.Equal(t, "AccountId", d.Key)
		assert.Equal(t, "Property resolver for 'AccountId' is already defined", d.Message)
	}
}

func TestCheckDuplicates_CaseInsensitiveKeyFirstSeenCasing(t *testing.T) {
	specs := []spec.Resolver{
		{Property: "Id", Unit: "a.go", Location: "a.go:3:1"},
		{Property: "ID", Unit: "a.go", Location: "a.go:9:1"},
	}

	diags := CheckDuplicates(specs)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "Property resolver for 'Id' is already defined", diags.Errors[0].Message)
	assert.Equal(t, "a.go:9:1", diags.Errors[0].Location)
}

func TestCheckDuplicates_ScopedPerUnit(t *testing.T) {
	// The same key in two different units escapes detection; the generation
	// path still collapses it globally.
	specs := []spec.Resolver{
		{Property: "AccountId", Unit: "a.go", Location: "a.go:3:1"},
		{Property: "AccountId", Unit: "b.go", Location: "b.go:3:1"},
	}

	diags := CheckDuplicates(specs)

	assert.Empty(t, diags.Errors)
	assert.True(t, diags.IsValid())
}

func TestCheckDuplicates_MultipleUnitsAndKeys(t *testing.T) {
	specs := []spec.Resolver{
		{Property: "AccountId", Unit: "a.go", Location: "a.go:3:1"},
		{Property: "Carrier", Unit: "a.go", Location: "a.go:5:1"},
		{Property: "accountid", Unit: "a.go", Location: "a.go:7:1"},
		{Property: "Carrier", Unit: "b.go", Location: "b.go:3:1"},
		{Property: "Carrier", Unit: "b.go", Location: "b.go:5:1"},
	}

	diags := CheckDuplicates(specs)

	require.Len(t, diags.Errors, 2)
	assert.Equal(t, "a.go:7:1", diags.Errors[0].Location)
	assert.Equal(t, "b.go:5:1", diags.Errors[1].Location)
}

func TestCheckDuplicates_NoSpecs(t *testing.T) {
	diags := CheckDuplicates(nil)

	assert.True(t, diags.IsValid())
	assert.NoError(t, diags.Error())
}
