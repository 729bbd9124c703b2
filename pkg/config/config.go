package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Slach/dashboard-kit/pkg/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	defaultDir  = ".dashboard-kit"
	defaultFile = "dashboard-kit.yml"
)

type Config struct {
	Timezone string `yaml:"timezone"`
	Decimals *int   `yaml:"decimals"`
	LogLevel string `yaml:"log_level"`
	// Now pins the clock, any format understood by dateparse
	Now string `yaml:"now"`
}

// DefaultPath returns ~/.dashboard-kit/dashboard-kit.yml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(home, defaultDir, defaultFile), nil
}

// Load reads the config file at path. A missing file at the default location
// yields an empty config, a missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			log.Debug().Str("path", path).Msg("config file not found, using defaults")
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	return &cfg, nil
}

// ApplyCLI overrides file values with flags that were set on the command line
func (c *Config) ApplyCLI(cli *types.CLI) {
	if cli == nil {
		return
	}
	if cli.Timezone != "" {
		c.Timezone = cli.Timezone
	}
	if cli.LogLevel != "" {
		c.LogLevel = cli.LogLevel
	}
	if cli.Now != "" {
		c.Now = cli.Now
	}
	if cli.Decimals >= 0 {
		d := cli.Decimals
		c.Decimals = &d
	}
}

// DecimalCount returns the configured decimal count or fallback
func (c *Config) DecimalCount(fallback int) int {
	if c.Decimals == nil {
		return fallback
	}
	return *c.Decimals
}

// PinnedNow parses Now in loc. ok is false when no time is pinned.
func (c *Config) PinnedNow(loc *time.Location) (t time.Time, ok bool, err error) {
	if c.Now == "" {
		return time.Time{}, false, nil
	}
	t, err = types.ParseTime(c.Now, loc)
	if err != nil {
		return time.Time{}, false, errors.Wrapf(err, "failed to parse now %q", c.Now)
	}
	return t, true, nil
}
