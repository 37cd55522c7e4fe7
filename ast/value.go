// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// ToValue converts a Go value into a Value. The input must be nil, a bool,
// string, or numeric value, a []any or map[string]any whose elements are
// themselves convertible, or a Value. Any other type causes a panic.
//
// The result does not share any container with the input, except where v or
// one of its elements is already a Value.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		out := make(Object, len(t))
		for key, elt := range t {
			out[key] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
