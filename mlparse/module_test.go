package mlparse

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/miniml/configs"
	"github.com/reusee/miniml/logs"
	"github.com/reusee/miniml/mlast"
)

func TestModuleParse(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
		func() logs.Writer {
			return buf
		},
	).Call(func(
		parse ParseFunc,
	) {
		ctx := context.Background()

		exp, err := parse(ctx, "f x y + 1")
		if err != nil {
			t.Fatal(err)
		}
		if got := mlast.Format(exp); got != "(+ (app (app f x) y) 1)" {
			t.Fatalf("got %s", got)
		}

		_, err = parse(ctx, "1 +")
		if !errors.Is(err, ErrUnexpectedEOF) {
			t.Fatalf("got %v", err)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}

		_, err = parse(ctx, "1 )")
		if !errors.Is(err, ErrTrailingInput) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestModuleParseConfig(t *testing.T) {
	defer logs.SetLevel("info")

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/miniml.cue"}, "")
		},
		func() logs.Writer {
			return buf
		},
	).Call(func(
		parse ParseFunc,
	) {
		ctx := context.Background()

		// allow_trailing
		exp, err := parse(ctx, "1 )")
		if err != nil {
			t.Fatal(err)
		}
		if got := mlast.Format(exp); got != "1" {
			t.Fatalf("got %s", got)
		}

		exp, err = parse(ctx, "f (")
		if err != nil {
			t.Fatal(err)
		}
		if got := mlast.Format(exp); got != "f" {
			t.Fatalf("got %s", got)
		}

		// max_depth counts nesting levels
		exp, err = parse(ctx, strings.Repeat("(", 15)+"1"+strings.Repeat(")", 15))
		if err != nil {
			t.Fatal(err)
		}
		if got := mlast.Format(exp); got != "1" {
			t.Fatalf("got %s", got)
		}
		_, err = parse(ctx, strings.Repeat("(", 16)+"1"+strings.Repeat(")", 16))
		if !errors.Is(err, ErrTooDeep) {
			t.Fatalf("got %v", err)
		}

		// log_level
		if !strings.Contains(buf.String(), "msg=parsed") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "msg=backtrack") {
			t.Fatalf("got %s", buf.String())
		}

		// the level is applied on first use only
		if err := logs.SetLevel("warn"); err != nil {
			t.Fatal(err)
		}
		buf.Reset()
		if _, err := parse(ctx, "1"); err != nil {
			t.Fatal(err)
		}
		if buf.Len() > 0 {
			t.Fatalf("got %s", buf.String())
		}
	})
}
