package pipeconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/pipe/configs"
	"github.com/reusee/pipe/logs"
)

//go:embed schema.cue
var schema string

type ConfigDirs []string

func (Module) ConfigDirs() ConfigDirs {
	var dirs ConfigDirs
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs ConfigDirs,
) configs.Loader {
	filenames := []string{
		"pipe.cue",
		".pipe.cue",
	}

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
