// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jsondoc/ast"
	"github.com/creachadair/jsondoc/ast/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestCursor(t *testing.T) {
	doc := ast.ParseString(testJSON)
	if !doc.OK() {
		t.Fatalf("Parse: %v", doc.Err())
	}
	v := doc.Root()
	root := v.(ast.Object)

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"BadElement", []any{3.5}, v, true},

		{"ArrayPos", []any{"list", 1}, root["list"].(ast.Array)[1], false},
		{"ArrayNeg", []any{"list", -1}, root["list"].(ast.Array)[1], false},
		{"ArrayRange", []any{"o", 25}, root["o"], true},
		{"ObjPath", []any{"xyz", "d"}, ast.Bool(true), false},
		{"Deep", []any{"list", 0, "x"}, ast.Number(1), false},

		{"FuncArray", []any{"o", testPathFunc}, ast.Number(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, ast.Number(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, ast.Bool(true), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Fatalf("Down %+v: got %v, want error", tc.path, c.Value())
			}
			got := c.Value()
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("Down %+v: wrong result (-got, +want):\n%s", tc.path, diff)
			} else if err == nil {
				t.Logf("Found %s OK", got.JSON())
			}
		})
	}
}

func TestCursorUpReset(t *testing.T) {
	v := ast.ToValue(map[string]any{
		"a": []any{"b", map[string]any{"c": nil}},
	})
	c := cursor.New(v).Down("a", 1, "c")
	if err := c.Err(); err != nil {
		t.Fatalf("Down failed: %v", err)
	}
	if !ast.IsNull(c.Value()) {
		t.Errorf("Value: got %v, want null", c.Value())
	}
	if got := len(c.Path()); got != 4 {
		t.Errorf("Path: got %d values, want 4", got)
	}
	if got := c.Up().Value().Kind(); got != ast.ObjectKind {
		t.Errorf("Up: got %v, want object", got)
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("Reset: at origin %v, err %v", c.AtOrigin(), c.Err())
	}
}

func TestPath(t *testing.T) {
	doc := ast.ParseString(testJSON)
	if !doc.OK() {
		t.Fatalf("Parse: %v", doc.Err())
	}

	s, err := cursor.Path[ast.String](doc.Root(), "y", "hello")
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	} else if s.Text() != "there" {
		t.Errorf("Path: got %q, want %q", s.Text(), "there")
	}

	if _, err := cursor.Path[ast.Number](doc.Root(), "y", "hello"); err == nil {
		t.Error("Path: got nil, want type error")
	}
	if _, err := cursor.Path[ast.Number](doc.Root(), "nonesuch"); err == nil {
		t.Error("Path: got nil, want missing key error")
	}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Array:
		return ast.ToValue(len(t)), nil
	case ast.Object:
		return ast.ToValue(len(t)), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
