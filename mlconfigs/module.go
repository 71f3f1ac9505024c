package mlconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/miniml/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
