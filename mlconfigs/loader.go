package mlconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/miniml/configs"
	"github.com/reusee/miniml/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"miniml.cue",
	".miniml.cue",
}

// ConfigsLoader collects config files from the working directory, the user
// config directory and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	paths := findFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func findFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
