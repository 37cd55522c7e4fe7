// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsondoc

import "fmt"

// LexError is the concrete type of errors reported by the Scanner when the
// input does not match the lexical grammar of JSON.
type LexError struct {
	Offset   int     // byte offset of the error, 0-based
	Location LineCol // line and column of the error

	err error
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("at %s: %s (offset %d)", e.Location, e.err.Error(), e.Offset)
}

// Unwrap supports error wrapping.
func (e *LexError) Unwrap() error { return e.err }

// SyntaxError is the concrete type of errors reported by the parser when a
// well-formed sequence of tokens does not match the grammar of JSON, or
// violates a limit such as the maximum nesting depth.
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

// NewSyntaxError constructs a syntax error at loc, with a message formatted
// from msg and args. If err != nil, the result wraps it.
func NewSyntaxError(loc LineCol, err error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Location: loc, Message: fmt.Sprintf(msg, args...), err: err}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
