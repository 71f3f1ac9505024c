package configs

import (
	"errors"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("value not found")

// Loader reads CUE files lazily, once. Files earlier in the list take
// precedence in AssignFirst.
type Loader struct {
	paths    []string
	getRoots func() ([]rootInfo, error)
}

// NewLoader validates every file against schemaSrc, the body of a closed
// struct, when it is not empty.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		paths: filePaths,

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err = value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

type rootInfo struct {
	value cue.Value
	path  string
}

func (l Loader) Paths() []string {
	return l.paths
}

func (l Loader) values(path string) iter.Seq2[cue.Value, error] {
	return func(yield func(cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(cue.Value{}, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Exists() && value.Err() == nil {
				if !yield(value, nil) {
					return
				}
			}
		}
	}
}

// AssignFirst decodes the first value found at path into target.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.values(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}

// First returns the first value at path, or the zero value if no file sets it.
func First[T any](loader Loader, path string) (ret T, err error) {
	err = loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		return ret, nil
	}
	return
}
