package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Span identifies one parse invocation in log records and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey

// Writer receives terminal log output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
