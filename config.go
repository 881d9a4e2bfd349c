package wangtile

import (
	"fmt"
	"io/ioutil"

	"github.com/go-yaml/yaml"
	"github.com/mitchellh/go-homedir"
)

// Config includes settings for an Atlas and the tools built around it.
type Config struct {
	// in pixels
	TileWidth  uint `yaml:"tile_width"`
	TileHeight uint `yaml:"tile_height"`

	// tile handed out when no signature matches (ResolveOrDefault)
	Fallback TileID `yaml:"fallback"`

	// where records are persisted (sqlite), "" for none
	Store string `yaml:"store"`

	// integer upscale applied to preview images
	PreviewScale uint `yaml:"preview_scale"`
}

// DefaultConfig returns a config with default settings.
func DefaultConfig() *Config {
	return &Config{
		TileWidth:    32,
		TileHeight:   32,
		PreviewScale: 4,
	}
}

// LoadConfig reads a YAML config file over the defaults. A leading ~ in the
// path is expanded.
func LoadConfig(fname string) (*Config, error) {
	path, err := homedir.Expand(fname)
	if err != nil {
		return nil, err
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}

	if cfg.TileWidth == 0 || cfg.TileHeight == 0 {
		return nil, fmt.Errorf("config: tile size %dx%d is invalid", cfg.TileWidth, cfg.TileHeight)
	}
	if cfg.PreviewScale == 0 {
		cfg.PreviewScale = 1
	}
	if cfg.Store != "" {
		cfg.Store, err = homedir.Expand(cfg.Store)
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
