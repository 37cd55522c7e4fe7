// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsondoc implements a JSON scanner, and the shared types used by the
// document parser in package ast.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON.  Construct a scanner
// from an io.Reader and call its Next method to iterate over the stream. Next
// advances to the next input token and returns nil, or reports an error:
//
//	s := jsondoc.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates an I/O or lexical error in the input. Lexical errors have concrete
// type *jsondoc.LexError and report the position of the fault.
//
//	if s.Err() != io.EOF {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// To scan a whole input at once, use Tokenize, which returns the complete
// sequence of lexemes or the first lexical error:
//
//	lex, err := jsondoc.Tokenize(input)
//
// # Documents
//
// Package ast parses a token sequence into a document tree with a bounded
// nesting depth, and renders trees back to JSON text. Syntax errors found
// there have concrete type *jsondoc.SyntaxError.
//
// # Strings
//
// String tokens retain their quotation marks and escapes. Use Unquote to
// decode them and Quote to encode a Go string as a JSON string.
package jsondoc
