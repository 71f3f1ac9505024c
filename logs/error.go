package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span of ctx, if any, into err. err itself stays
// reachable through errors.Is and errors.As.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := SpanOf(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
