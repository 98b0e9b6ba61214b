package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := New()
	r.Register("AccountId", func(v any) (string, bool) {
		return fmt.Sprint(v), true
	})

	got, ok := r.Resolve("AccountId", 42)
	require.True(t, ok)
	assert.Equal(t, "42", got)
}

func TestRegistry_CaseInsensitiveLookup(t *testing.T) {
	r := New()
	r.Register("AccountId", func(any) (string, bool) { return "a", true })

	_, ok := r.Lookup("ACCOUNTID")
	assert.True(t, ok)

	_, ok = r.Lookup("accountid")
	assert.True(t, ok)
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	r := New()
	r.Register("AccountId", func(any) (string, bool) { return "first", true })
	r.Register("ACCOUNTID", func(any) (string, bool) { return "second", true })

	got, ok := r.Resolve("accountid", nil)
	require.True(t, ok)
	assert.Equal(t, "second", got)

	assert.Equal(t, []string{"accountid"}, r.Names())
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := New()

	got, ok := r.Resolve("Carrier", struct{}{})
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestRegistry_IgnoresEmptyAndNil(t *testing.T) {
	r := New()
	r.Register("", func(any) (string, bool) { return "", true })
	r.Register("AccountId", nil)

	assert.Empty(t, r.Names())
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := New()
	r.Register("Carrier", func(any) (string, bool) { return "", false })
	r.Register("AccountId", func(any) (string, bool) { return "", false })
	r.Register("Status", func(any) (string, bool) { return "", false })

	assert.Equal(t, []string{"accountid", "carrier", "status"}, r.Names())
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			name := fmt.Sprintf("Prop%d", i)
			r.Register(name, func(any) (string, bool) { return name, true })

			_, _ = r.Resolve(name, nil)
			_ = r.Names()
		}(i)
	}

	wg.Wait()

	assert.Len(t, r.Names(), 8)
}
