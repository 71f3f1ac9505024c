package mlparse

import (
	"errors"
	"testing"

	"github.com/reusee/miniml/mlast"
	"github.com/reusee/miniml/mltoken"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"()", "unit"},
		{"int", "int"},
		{"bool", "bool"},
		{"((int))", "int"},
		{"int -> int -> int", "(-> int (-> int int))"},
		{"(int -> int) -> int", "(-> (-> int int) int)"},
		{"int * bool * unit", "(* int (* bool unit))"},
		{"int + bool + unit", "(+ int (+ bool unit))"},
		{"int + bool * unit -> int", "(+ int (* bool (-> unit int)))"},
		{"(int + int) * bool", "(* (+ int int) bool)"},
		{"ref int -> bool", "(-> (ref int) bool)"},
		{"ref ref int", "(ref (ref int))"},
		{"ref (int * int)", "(ref (* int int))"},
	}
	for _, test := range tests {
		c := newCursor(t, test.input)
		typ, err := ParseType(c)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		if got := mlast.FormatType(typ); got != test.expected {
			t.Fatalf("%q: got %s", test.input, got)
		}
		if !c.AtEOF() {
			t.Fatalf("%q: not fully consumed", test.input)
		}
	}
}

func TestParseTypeStops(t *testing.T) {
	c := newCursor(t, "int -> bool) = 1")
	typ, err := ParseType(c)
	if err != nil {
		t.Fatal(err)
	}
	if got := mlast.FormatType(typ); got != "(-> int bool)" {
		t.Fatalf("got %s", got)
	}
	if tok := c.Peek(); tok.Kind != mltoken.RParen || tok.Pos != 11 {
		t.Fatalf("got %v", tok)
	}
}

func TestParseTypeErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
		pos   mltoken.Pos
	}{
		{"", ErrUnexpectedEOF, mltoken.EOFPos},
		{"-> int", ErrUnexpectedToken, 0},
		{"int ->", ErrUnexpectedEOF, mltoken.EOFPos},
		{"(int", ErrUnexpectedEOF, mltoken.EOFPos},
		{"(int bool)", ErrExpectedToken, 5},
		{"x", ErrUnexpectedToken, 0},
	}
	for _, test := range tests {
		_, err := ParseType(newCursor(t, test.input))
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%q: got %v", test.input, err)
		}
		if !errors.Is(err, test.err) || parseErr.Pos != test.pos {
			t.Fatalf("%q: got %v", test.input, err)
		}
	}
}
