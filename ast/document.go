// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import "errors"

// A Document is the result of parsing a JSON input. A document is either
// valid, holding exactly one root value, or failed, holding none. There is no
// partially-parsed state.
type Document struct {
	root Value
	err  error
}

var errNoRoot = errors.New("document has no root value")

// OK reports whether d holds a root value.
func (d *Document) OK() bool { return d != nil && d.root != nil }

// Root returns the root value of d, or nil if d is not OK.
func (d *Document) Root() Value {
	if d == nil {
		return nil
	}
	return d.root
}

// Err returns the error that caused parsing to fail, or nil if d is OK.
func (d *Document) Err() error {
	if d.OK() {
		return nil
	} else if d == nil || d.err == nil {
		return errNoRoot
	}
	return d.err
}

// SetRoot replaces the root value of d with v, discarding any previous tree.
// If v == nil, d becomes a failed document.
func (d *Document) SetRoot(v Value) {
	d.root = v
	d.err = nil
}

// JSON renders the root of d as JSON text. If d is not OK, JSON returns "".
func (d *Document) JSON() string {
	if !d.OK() {
		return ""
	}
	return d.root.JSON()
}

func failed(err error) *Document { return &Document{err: err} }
