package mlconfigs

import (
	"fmt"
	"sync"

	"github.com/reusee/miniml/configs"
)

type ParserConfig struct {
	MaxDepth      int
	AllowTrailing bool
	LogLevel      string
}

type LoadParserConfig func() (ParserConfig, error)

func (Module) LoadParserConfig(
	loader configs.Loader,
) LoadParserConfig {
	return sync.OnceValues(func() (ret ParserConfig, err error) {
		defer func() {
			if err != nil {
				err = fmt.Errorf("load parser config from %v: %w", loader.Paths(), err)
			}
		}()

		ret.MaxDepth, err = configs.First[int](loader, "max_depth")
		if err != nil {
			return
		}
		ret.AllowTrailing, err = configs.First[bool](loader, "allow_trailing")
		if err != nil {
			return
		}
		ret.LogLevel, err = configs.First[string](loader, "log_level")
		if err != nil {
			return
		}
		return
	})
}
