// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/jsondoc"
)

// Encode writes the JSON encoding of v to w.
//
// Numbers are written in plain decimal notation, using the fewest digits that
// represent the value exactly. Strings and object keys are escaped so that the
// output can be parsed back into an equivalent value. Object members are
// written in lexicographic order of their keys.
func Encode(w io.Writer, v Value) error {
	if v == nil {
		return fmt.Errorf("encode: nil value")
	}
	_, err := w.Write(appendValue(nil, v))
	return err
}

func appendValue(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case Null, nil:
		return append(buf, "null"...)
	case Bool:
		return strconv.AppendBool(buf, bool(t))
	case Number:
		return appendNumber(buf, t)
	case String:
		return appendString(buf, string(t))
	case Object:
		buf = append(buf, '{')
		for i, key := range t.Keys() {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendString(buf, key)
			buf = append(buf, ':')
			buf = appendValue(buf, t[key])
		}
		return append(buf, '}')
	case Array:
		buf = append(buf, '[')
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendValue(buf, elt)
		}
		return append(buf, ']')
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func appendNumber(buf []byte, n Number) []byte {
	return strconv.AppendFloat(buf, float64(n), 'f', -1, 64)
}

func appendString(buf []byte, s string) []byte { return jsondoc.AppendQuote(buf, s) }
