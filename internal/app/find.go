package app

import (
	"github.com/shu-go/findcfg"
)

const (
	// ConfigName is the config file name without extension.
	ConfigName       = ".commitional"
	userConfigFolder = "commitional"
)

// FindConfig looks for a config file: exact when given, then ".commitional.yaml",
// ".commitional.yml" or ".commitional.json" in the project root, then the user config
// directory. The fallback is where a new config would be written.
func FindConfig(projectRoot, exact string) (path string, found bool, fallback string) {
	finder := findcfg.New(
		findcfg.Name(ConfigName),
		findcfg.ExactPath(exact),
		findcfg.YAML(),
		findcfg.JSON(),
		findcfg.Dir(projectRoot),
		findcfg.UserConfigDir(userConfigFolder),
	)
	if cfg := finder.Find(); cfg != nil {
		return cfg.Path, true, finder.FallbackPath()
	}
	return "", false, finder.FallbackPath()
}
