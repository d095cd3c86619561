package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// appName names the config directory and the binary.
	appName = "roundtrip"

	// defaultRouteDetailLimit caps the per-leg route breakdown and the
	// matrix echo to instances that still fit on a screen.
	defaultRouteDetailLimit = 12
)

// Config carries the file-configurable defaults. Flags override config;
// config overrides built-ins.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Output OutputConfig `toml:"output"`
}

// SolverConfig tunes admission control.
type SolverConfig struct {
	// MaxCities overrides the built-in admission ceiling when positive.
	MaxCities int `toml:"max_cities"`
}

// OutputConfig tunes the rendered report.
type OutputConfig struct {
	// RouteDetailLimit caps the instance size for which the matrix echo
	// and the per-leg breakdown are printed.
	RouteDetailLimit int `toml:"route_detail_limit"`

	// Progress enables the spinner during long fills.
	Progress bool `toml:"progress"`
}

func defaultConfig() Config {
	return Config{
		Output: OutputConfig{
			RouteDetailLimit: defaultRouteDetailLimit,
			Progress:         true,
		},
	}
}

// loadConfig reads the TOML config. An explicit path must exist and parse;
// the default path ($XDG config dir/roundtrip/config.toml) is optional and
// silently skipped when absent. Missing keys keep their defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		base, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(base, appName, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
