package modconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestEmptyDocument(t *testing.T) {
	doc := Empty()

	assert.True(t, doc.IsEmpty())
	assert.Equal(t, cty.EmptyObjectVal, doc.Value())
	assert.False(t, doc.Has("anything"))

	_, ok := doc.Get("anything")
	assert.False(t, ok)
	_, ok = doc.String("anything")
	assert.False(t, ok)
}

func TestZeroValueDocumentIsSafe(t *testing.T) {
	// A zero Document must behave exactly like Empty().
	var doc Document
	assert.True(t, doc.IsEmpty())
	assert.Equal(t, cty.EmptyObjectVal, doc.Value())
}

func TestFromValueDegradesToEmpty(t *testing.T) {
	testCases := []struct {
		name string
		val  cty.Value
	}{
		{name: "null", val: cty.NullVal(cty.EmptyObject)},
		{name: "unknown", val: cty.UnknownVal(cty.EmptyObject)},
		{name: "non-object", val: cty.StringVal("not a document")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := FromValue(tc.val)
			assert.True(t, doc.IsEmpty())
		})
	}
}

func TestTypedAccessors(t *testing.T) {
	doc := FromMap(map[string]cty.Value{
		"label":   cty.StringVal("upstream"),
		"count":   cty.NumberIntVal(3),
		"enabled": cty.True,
		"numeric": cty.StringVal("42"), // convertible to number
	})

	require.False(t, doc.IsEmpty())
	assert.True(t, doc.Has("label"))

	label, ok := doc.String("label")
	require.True(t, ok)
	assert.Equal(t, "upstream", label)

	count, ok := doc.Int("count")
	require.True(t, ok)
	assert.Equal(t, 3, count)

	enabled, ok := doc.Bool("enabled")
	require.True(t, ok)
	assert.True(t, enabled)

	numeric, ok := doc.Int("numeric")
	require.True(t, ok)
	assert.Equal(t, 42, numeric)

	// Absent or inconvertible keys report absence instead of failing.
	_, ok = doc.Int("label")
	assert.False(t, ok)
	_, ok = doc.Bool("missing")
	assert.False(t, ok)
}
