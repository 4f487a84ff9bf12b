package setting

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_KeyUniqueness(t *testing.T) {
	c := NewCollection()
	first := New(Raw{Name: "A", Type: "string", DefaultValue: strPtr("one")})
	second := New(Raw{Name: "A", Type: "bool", DefaultValue: strPtr("YES")})
	c.Add(first, second, New(Raw{Name: "B", Type: "string"}))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Duplicates())

	got, ok := c.Get("A")
	require.True(t, ok)
	assert.Same(t, first, got, "first-seen setting wins")
}

func TestCollection_SortedOrdinal(t *testing.T) {
	c := NewCollection()
	for _, key := range []string{"b", "B", "_x", "a", "A_B", "AB", "a-b", "1"} {
		c.Add(New(Raw{Name: key}))
	}

	sorted := c.Sorted()
	keys := make([]string, len(sorted))
	for i, s := range sorted {
		keys[i] = s.Key
	}

	assert.True(t, sort.StringsAreSorted(keys))
	assert.Equal(t, []string{"1", "AB", "A_B", "B", "_x", "a", "a-b", "b"}, keys)
}

func TestCollection_IgnoresNil(t *testing.T) {
	c := NewCollection()
	c.Add(nil)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Sorted())
}

func TestCollection_MergesSourcesInOrder(t *testing.T) {
	sourceA := []*Setting{
		New(Raw{Name: "SDKROOT", Type: "string"}),
		New(Raw{Name: "ARCHS", Type: "stringlist"}),
	}
	sourceB := []*Setting{
		New(Raw{Name: "ARCHS", Type: "string"}),
		New(Raw{Name: "ENABLE_BITCODE", Type: "bool"}),
	}

	c := NewCollection()
	c.Add(sourceA...)
	c.Add(sourceB...)
	assert.Equal(t, 1, c.Duplicates())

	merged := c.Sorted()
	require.Len(t, merged, 3)
	assert.Equal(t, "ARCHS", merged[0].Key)
	assert.Equal(t, TypeStringList, merged[0].Type)
	assert.Equal(t, "ENABLE_BITCODE", merged[1].Key)
	assert.Equal(t, "SDKROOT", merged[2].Key)
}
