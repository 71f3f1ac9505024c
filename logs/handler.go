package logs

import (
	"context"
	"log/slog"
)

// Handler adds the span of ctx to every record.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := SpanOf(ctx); ok {
		record.Add("span", span)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithAttrs(attrs),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithGroup(name),
	}
}

func SpanOf(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok
}
