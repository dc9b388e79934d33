// Package typeid provides opaque, comparable tokens identifying the runtime
// data type carried by a port, without the comparing code needing to know
// the concrete type.
package typeid

import "reflect"

// Token identifies a runtime data type. Tokens are plain comparable values;
// two tokens are equal iff they denote the same underlying type. The zero
// Token denotes no type at all and never equals a token obtained from Of or
// FromValue.
type Token struct {
	rt reflect.Type
}

// Of returns the token for the statically-known type T.
func Of[T any]() Token {
	return Token{rt: reflect.TypeFor[T]()}
}

// FromValue returns the token for the dynamic type of v. A nil interface
// yields the zero Token.
func FromValue(v any) Token {
	return Token{rt: reflect.TypeOf(v)}
}

// Equal reports whether both tokens denote the same underlying type.
// Comparison is O(1); `==` is equivalent.
func (t Token) Equal(other Token) bool {
	return t.rt == other.rt
}

// IsZero reports whether the token carries no type.
func (t Token) IsZero() bool {
	return t.rt == nil
}

// String returns a human-readable name for the denoted type, for logs and
// error messages only. It is not a stable identifier.
func (t Token) String() string {
	if t.rt == nil {
		return "<none>"
	}
	return t.rt.String()
}
