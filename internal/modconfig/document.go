// Package modconfig carries the structured configuration document attached to
// a module instance at construction.
//
// Documents wrap a cty object value, which is immutable by construction, so
// the document a module was built with can never change underneath it. A
// module constructed without configuration receives the well-defined empty
// document rather than an absent state, so accessors never need a null case.
// Interpretation of recognized keys belongs to the concrete module.
package modconfig

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Document is an immutable, structured configuration document.
type Document struct {
	val cty.Value
}

// Empty returns the canonical empty document.
func Empty() Document {
	return Document{val: cty.EmptyObjectVal}
}

// FromValue wraps a cty value as a document. Null, unknown, or non-object
// values degrade to the empty document so that a Document is always safe to
// read from.
func FromValue(val cty.Value) Document {
	if val.IsNull() || !val.IsKnown() || !val.Type().IsObjectType() {
		return Empty()
	}
	return Document{val: val}
}

// FromMap builds a document from a key/value map.
func FromMap(attrs map[string]cty.Value) Document {
	if len(attrs) == 0 {
		return Empty()
	}
	return Document{val: cty.ObjectVal(attrs)}
}

// Value returns the underlying cty object value.
func (d Document) Value() cty.Value {
	if d.val == cty.NilVal {
		return cty.EmptyObjectVal
	}
	return d.val
}

// IsEmpty reports whether the document holds no attributes.
func (d Document) IsEmpty() bool {
	return d.Value().LengthInt() == 0
}

// Has reports whether the document contains the given top-level key.
func (d Document) Has(key string) bool {
	return d.Value().Type().HasAttribute(key)
}

// Get returns the raw value for a top-level key, and whether it was present.
func (d Document) Get(key string) (cty.Value, bool) {
	if !d.Has(key) {
		return cty.NilVal, false
	}
	return d.Value().GetAttr(key), true
}

// String returns the value for key converted to a string. The second return
// is false if the key is absent, null, or not convertible.
func (d Document) String(key string) (string, bool) {
	var out string
	if !d.convert(key, cty.String, &out) {
		return "", false
	}
	return out, true
}

// Int returns the value for key converted to an int.
func (d Document) Int(key string) (int, bool) {
	var out int
	if !d.convert(key, cty.Number, &out) {
		return 0, false
	}
	return out, true
}

// Bool returns the value for key converted to a bool.
func (d Document) Bool(key string) (bool, bool) {
	var out bool
	if !d.convert(key, cty.Bool, &out) {
		return false, false
	}
	return out, true
}

func (d Document) convert(key string, want cty.Type, out any) bool {
	raw, ok := d.Get(key)
	if !ok || raw.IsNull() || !raw.IsKnown() {
		return false
	}
	converted, err := convert.Convert(raw, want)
	if err != nil {
		return false
	}
	return gocty.FromCtyValue(converted, out) == nil
}
