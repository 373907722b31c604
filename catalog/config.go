package catalog

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/meshmon/udbf/errs"
)

// SourceConfig describes one file source: a configured rule for locating the
// files of one logical recording stream.
type SourceConfig struct {
	// Directory is the directory holding the stream's files.
	Directory string `mapstructure:"Directory"`

	// Pattern is the file naming pattern within Directory. The host's
	// date-template matcher interprets it; the bundled GlobLocator treats it
	// as a filepath glob.
	Pattern string `mapstructure:"Pattern"`

	// Files is the explicit CatalogSourceFiles override list. When non-empty
	// it replaces directory matching entirely.
	Files []string `mapstructure:"CatalogSourceFiles"`

	// Groups are the catalog group labels applied to every channel of this
	// source.
	Groups []string `mapstructure:"Groups"`
}

// Config maps catalog source ids to their file-source settings. Extra keys in
// the configuration file are ignored; nothing beyond this closed shape
// reaches the core.
type Config struct {
	Sources map[string]SourceConfig `mapstructure:"Sources"`
}

// LoadConfig reads a JSON adapter configuration from path.
//
// A missing or unreadable file and a configuration without sources are both
// fatal at catalog-build time; there is nothing sensible to serve without
// them.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("config %s: %w", path, errs.ErrNoSources)
	}

	return &cfg, nil
}
