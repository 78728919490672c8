package app

import (
	"fmt"
	"os"
	"path"

	"github.com/voicecode/vcsync/src/vcsync/internal/core"
	"go.uber.org/config"
	"go.uber.org/multierr"
)

// decorateConfigProvider includes any steps that modify the config.Provider before it is used, or use its data for any startup related activities.
func decorateConfigProvider(cfg config.Provider) (config.Provider, error) {
	combined, err := ensureLogFolder(cfg)
	if err != nil {
		return nil, fmt.Errorf("ensuring log folder: %v", err)
	}

	return combined, nil
}

// Ensure that all configured logging output directories exist or create if necessary.
func ensureLogFolder(cfg config.Provider) (config.Provider, error) {
	var c core.LoggingConfig
	if err := cfg.Get("logging").Populate(&c); err != nil {
		return nil, fmt.Errorf("loading logging config: %v", err)
	}

	var err error
	for _, outputPath := range c.OutputPaths {
		dir := path.Dir(outputPath)
		if e := os.MkdirAll(dir, 0o755); e != nil {
			err = multierr.Append(err, fmt.Errorf("creating logging directory %q: %v", dir, e))
		}
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
