// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a document tree for JSON values, a parser that
// constructs trees from JSON source, and an encoder that renders them back to
// JSON text.
//
// A Value is one of Null, Bool, Number, String, Object, or Array. The set is
// closed, so a type switch over these six types is exhaustive:
//
//	switch t := v.(type) {
//	case ast.Null:
//	case ast.Bool:
//	case ast.Number:
//	case ast.String:
//	case ast.Object:
//	case ast.Array:
//	}
//
// Each Object and Array owns its children. Trees built by the parser never
// share nodes, so a tree may be modified without affecting any other.
package ast

import (
	"maps"
	"math"
	"slices"
)

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind   Kind = iota // null
	BoolKind               // true or false
	NumberKind             // a 64-bit floating-point number
	StringKind             // a string of decoded text
	ObjectKind             // a collection of key-value members
	ArrayKind              // an ordered sequence of values
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ObjectKind: "object",
	ArrayKind:  "array",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value.
type Value interface {
	// Kind reports which variant the value is.
	Kind() Kind

	// JSON renders the value as JSON text.
	JSON() string

	isValue()
}

// IsNull reports whether v is the JSON null value.
func IsNull(v Value) bool { return v != nil && v.Kind() == NullKind }

// Null represents the null constant.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) JSON() string   { return "null" }
func (Null) String() string { return "Null" }
func (Null) isValue()       {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }

// Value returns the Boolean value of b.
func (b Bool) Value() bool { return bool(b) }

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) isValue() {}

// A Number is a numeric value. All JSON numbers are stored as 64-bit floats.
type Number float64

func (Number) Kind() Kind { return NumberKind }

// Float64 returns the value of n as a float64.
func (n Number) Float64() float64 { return float64(n) }

// IsInt reports whether n is an integer value that can be represented exactly
// as an int64.
func (n Number) IsInt() bool {
	f := float64(n)
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}

// Int64 returns the value of n truncated toward zero to an int64.
func (n Number) Int64() int64 { return int64(n) }

func (n Number) JSON() string { return string(appendNumber(nil, n)) }
func (Number) isValue()       {}

// A String is a string value. The text is stored with escapes already
// decoded.
type String string

func (String) Kind() Kind { return StringKind }

// Text returns the decoded text of s.
func (s String) Text() string { return string(s) }

func (s String) JSON() string { return string(appendString(nil, string(s))) }
func (String) isValue()       {}

// An Object is a collection of key-value members. Keys are unique, and the
// order of members is not significant.
type Object map[string]Value

func (Object) Kind() Kind { return ObjectKind }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key, or nil if
// there is no such member.
func (o Object) Find(key string) Value { return o[key] }

// Keys returns the keys of o in lexicographic order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

func (o Object) JSON() string { return string(appendValue(nil, o)) }
func (Object) isValue()       {}

// An Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) JSON() string { return string(appendValue(nil, a)) }
func (Array) isValue()       {}
