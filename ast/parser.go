// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/creachadair/jsondoc"

	"go4.org/mem"
)

// DefaultMaxDepth is the maximum nesting depth of arrays and objects accepted
// by Parse.
const DefaultMaxDepth = 64

// ErrEmptyInput is wrapped by the error reported for an input that contains
// no tokens at all.
var ErrEmptyInput = errors.New("no value in input")

// Parse parses a single JSON value from r, with arrays and objects nested at
// most DefaultMaxDepth levels deep. See ParseDepth.
func Parse(r io.Reader) *Document { return ParseDepth(r, DefaultMaxDepth) }

// ParseString parses a single JSON value from s. See Parse.
func ParseString(s string) *Document { return Parse(mem.NewReader(mem.S(s))) }

// ParseDepth parses a single JSON value from r, with arrays and objects nested
// at most maxDepth levels deep. If maxDepth <= 0, any array or object fails.
//
// The input must contain exactly one value, optionally surrounded by
// whitespace. If parsing fails, the resulting document is not OK, and its Err
// method reports why: a lexical error has concrete type [*jsondoc.LexError],
// and a syntax error has concrete type [*jsondoc.SyntaxError]. An empty input
// is a syntax error wrapping ErrEmptyInput.
func ParseDepth(r io.Reader, maxDepth int) *Document {
	lex, err := jsondoc.Tokenize(r)
	if err != nil {
		return failed(err)
	}
	return ParseLexemes(lex, maxDepth)
}

// ParseLexemes parses a single JSON value from a complete sequence of
// lexemes, such as the one returned by jsondoc.Tokenize. See ParseDepth.
func ParseLexemes(lex []jsondoc.Lexeme, maxDepth int) *Document {
	if len(lex) == 0 {
		return failed(jsondoc.NewSyntaxError(jsondoc.LineCol{Line: 1}, ErrEmptyInput, "%v", ErrEmptyInput))
	}
	p := &parser{lex: lex, maxDepth: maxDepth}
	v, err := p.parse()
	if err != nil {
		return failed(err)
	}
	return &Document{root: v}
}

// A parser is a recursive-descent parser over a sequence of lexemes. The
// cursor pos is the index of the next unconsumed lexeme.
type parser struct {
	lex      []jsondoc.Lexeme
	pos      int
	maxDepth int
}

func (p *parser) parse() (_ Value, err error) {
	defer recoverSyntaxError(&err)

	v := p.parseValue(p.maxDepth)
	if p.pos < len(p.lex) {
		p.syntaxError(nil, "unexpected %v after value", p.lex[p.pos].Token)
	}
	return v, nil
}

// parseValue consumes a single value of any type. Entering an array or object
// requires depth > 0, and the elements of the container are parsed with one
// less unit of depth.
func (p *parser) parseValue(depth int) Value {
	x := p.advance()
	switch x.Token {
	case jsondoc.LBrace, jsondoc.LSquare:
		if depth <= 0 {
			p.pos--
			p.syntaxError(nil, "maximum nesting depth (%d) exceeded", p.maxDepth)
		}
		if x.Token == jsondoc.LBrace {
			return p.parseMembers(depth - 1)
		}
		return p.parseElements(depth - 1)
	case jsondoc.String:
		return String(p.unquote(x))
	case jsondoc.Number:
		v, err := mem.ParseFloat(mem.B(x.Text), 64)
		if err != nil {
			p.pos--
			p.syntaxError(err, "invalid number %s", x.Text)
		}
		return Number(v)
	case jsondoc.True:
		return Bool(true)
	case jsondoc.False:
		return Bool(false)
	case jsondoc.Null:
		return Null{}
	default:
		p.pos--
		p.syntaxError(nil, "unexpected %v", x.Token)
		panic("unreachable")
	}
}

// parseMembers consumes zero or more key:value object members and the closing
// brace. A repeated key replaces the value of the earlier member.
// Precondition: the opening brace has been consumed.
func (p *parser) parseMembers(depth int) Object {
	obj := make(Object)
	if p.advanceIf(jsondoc.RBrace) {
		return obj // empty object
	}
	for {
		key := p.unquote(p.require(jsondoc.String))
		p.require(jsondoc.Colon)
		obj[key] = p.parseValue(depth)

		if p.require(jsondoc.RBrace, jsondoc.Comma).Token == jsondoc.RBrace {
			return obj
		}
	}
}

// parseElements consumes zero or more comma-separated array values and the
// closing bracket.
// Precondition: the opening bracket has been consumed.
func (p *parser) parseElements(depth int) Array {
	arr := Array{}
	if p.advanceIf(jsondoc.RSquare) {
		return arr // empty array
	}
	for {
		arr = append(arr, p.parseValue(depth))

		if p.require(jsondoc.RSquare, jsondoc.Comma).Token == jsondoc.RSquare {
			return arr
		}
	}
}

// advance consumes and returns the next lexeme, or fails at end of input.
func (p *parser) advance() jsondoc.Lexeme {
	if p.pos >= len(p.lex) {
		p.syntaxError(io.ErrUnexpectedEOF, "expected value, got end of input")
	}
	x := p.lex[p.pos]
	p.pos++
	return x
}

// advanceIf consumes the next lexeme and reports true if it has the given
// token type; otherwise it leaves the cursor in place and reports false.
func (p *parser) advanceIf(token jsondoc.Token) bool {
	if p.pos < len(p.lex) && p.lex[p.pos].Token == token {
		p.pos++
		return true
	}
	return false
}

// require consumes and returns the next lexeme, which must have one of the
// given token types.
func (p *parser) require(tokens ...jsondoc.Token) jsondoc.Lexeme {
	if p.pos >= len(p.lex) {
		p.syntaxError(io.ErrUnexpectedEOF, "%v", tokLabel(tokens, "end of input"))
	}
	x := p.lex[p.pos]
	if !slices.Contains(tokens, x.Token) {
		p.syntaxError(nil, "%v", tokLabel(tokens, x.Token))
	}
	p.pos++
	return x
}

func (p *parser) unquote(x jsondoc.Lexeme) string {
	dec, err := jsondoc.Unquote(x.Text)
	if err != nil {
		p.syntaxError(err, "invalid string: %v", err)
	}
	return string(dec)
}

// location reports the position of the lexeme under the cursor, or the end of
// the last lexeme if the input is exhausted.
func (p *parser) location() jsondoc.LineCol {
	if p.pos < len(p.lex) {
		return p.lex[p.pos].Location.First
	}
	return p.lex[len(p.lex)-1].Location.Last
}

func (p *parser) syntaxError(err error, msg string, args ...any) {
	panic(jsondoc.NewSyntaxError(p.location(), err, msg, args...))
}

func recoverSyntaxError(errp *error) {
	if serr := recover(); serr != nil {
		if err, ok := serr.(*jsondoc.SyntaxError); ok {
			*errp = err
			return
		}
		panic(serr)
	}
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []jsondoc.Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprint(got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, last)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
