package mlconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/miniml/configs"
)

func TestLoadParserConfig(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/miniml.cue"}, schema)
		},
	).Call(func(
		load LoadParserConfig,
	) {
		config, err := load()
		if err != nil {
			t.Fatal(err)
		}
		if config.MaxDepth != 64 || !config.AllowTrailing || config.LogLevel != "debug" {
			t.Fatalf("got %+v", config)
		}
	})
}

func TestLoadParserConfigDefaults(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, schema)
		},
	).Call(func(
		load LoadParserConfig,
	) {
		config, err := load()
		if err != nil {
			t.Fatal(err)
		}
		if config != (ParserConfig{}) {
			t.Fatalf("got %+v", config)
		}
	})
}

func TestLoadParserConfigInvalid(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/bad.cue"}, schema)
		},
	).Call(func(
		load LoadParserConfig,
	) {
		if _, err := load(); err == nil {
			t.Fatal("should error")
		}
	})
}

func TestFindFiles(t *testing.T) {
	paths := findFiles([]string{"testdata", "nonexistent"})
	if len(paths) != 1 || paths[0] != "testdata/miniml.cue" {
		t.Fatalf("got %v", paths)
	}
}
