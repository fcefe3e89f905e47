package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/curvedit/pkg/curve"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "curvedit.yaml"

// Config holds the editor settings read from curvedit.yaml.
type Config struct {
	LogLevel string `yaml:"log_level" json:"log_level"`
	// Samples is the number of intervals used when sampling or plotting a curve.
	Samples int `yaml:"samples" json:"samples"`
	// MinKeyframeDistance is the X gap kept between a moved keyframe and its neighbours.
	MinKeyframeDistance float32 `yaml:"min_keyframe_distance" json:"min_keyframe_distance"`
	Plot                Plot    `yaml:"plot" json:"plot"`
}

// Plot configures terminal plots.
type Plot struct {
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	Color  string `yaml:"color" json:"color"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel:            "warn",
		Samples:             curve.DefaultSamples,
		MinKeyframeDistance: curve.MinKeyframeDistance,
		Plot: Plot{
			Width:  64,
			Height: 16,
			Color:  "#7D56F4",
		},
	}
}

// Load reads a configuration file (YAML or JSON) over the defaults.
// A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []string
	if c.Samples <= 0 {
		errs = append(errs, fmt.Sprintf("samples must be positive, got %d", c.Samples))
	}
	if c.MinKeyframeDistance < 0 {
		errs = append(errs, fmt.Sprintf("min_keyframe_distance must not be negative, got %v", c.MinKeyframeDistance))
	}
	if c.Plot.Width < 8 || c.Plot.Height < 4 {
		errs = append(errs, fmt.Sprintf("plot must be at least 8x4, got %dx%d", c.Plot.Width, c.Plot.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
