// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsondoc

import (
	"errors"

	"github.com/creachadair/jsondoc/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(AppendQuote(nil, src)) }

// AppendQuote appends the JSON encoding of src, as by Quote, to dst and
// returns the extended slice.
func AppendQuote(dst []byte, src string) []byte {
	dst = append(dst, '"')
	dst = append(dst, escape.Quote(mem.S(src))...)
	return append(dst, '"')
}

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src []byte) ([]byte, error) {
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.B(src[1 : len(src)-1]))
}
