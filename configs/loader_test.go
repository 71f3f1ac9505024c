package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
str?: string
num?: int
list?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/a.cue", "testdata/b.cue"}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	var num int
	if err := loader.AssignFirst("num", &num); err != nil {
		t.Fatal(err)
	}
	if num != 42 {
		t.Fatalf("got %v", num)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/b.cue"}, testSchema)

	str, err := First[string](loader, "str")
	if err != nil {
		t.Fatal(err)
	}
	if str != "foo" {
		t.Fatalf("got %v", str)
	}

	list, err := First[[]int](loader, "list")
	if err != nil {
		t.Fatal(err)
	}
	if list != nil {
		t.Fatalf("got %v", list)
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	n, err := First[int](loader, "num")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/missing.cue"}, "")
	if _, err := First[string](loader, "str"); err == nil {
		t.Fatal("should error")
	}
}
