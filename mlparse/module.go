package mlparse

import (
	"context"
	"log/slog"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/miniml/logs"
	"github.com/reusee/miniml/mlast"
	"github.com/reusee/miniml/mlconfigs"
)

type Module struct {
	dscope.Module
	Configs mlconfigs.Module
}

// ParseFunc parses a whole program. Each call runs in its own span.
type ParseFunc func(ctx context.Context, source string) (mlast.Exp, error)

func (Module) Parse(
	logger logs.Logger,
	newSpan logs.NewSpan,
	loadConfig mlconfigs.LoadParserConfig,
) ParseFunc {
	// the configured level is process-wide, apply it once
	configure := sync.OnceValues(func() (mlconfigs.ParserConfig, error) {
		config, err := loadConfig()
		if err != nil {
			return config, err
		}
		if err := logs.SetLevel(config.LogLevel); err != nil {
			return config, err
		}
		return config, nil
	})

	return func(ctx context.Context, source string) (mlast.Exp, error) {
		config, err := configure()
		if err != nil {
			return nil, err
		}

		ctx, _ = newSpan(ctx, "")
		logger.DebugContext(ctx, "parse",
			"bytes", len(source),
		)

		exp, err := ParseSource(source, Options{
			MaxDepth:      config.MaxDepth,
			AllowTrailing: config.AllowTrailing,
			Logger:        logger,
		})
		if err != nil {
			logger.DebugContext(ctx, "parse failed",
				"error", err,
			)
			return nil, logs.WrapSpan(ctx, err)
		}

		if logger.Enabled(ctx, slog.LevelDebug) {
			logger.DebugContext(ctx, "parsed",
				"ast", mlast.Format(exp),
			)
		}
		return exp, nil
	}
}
