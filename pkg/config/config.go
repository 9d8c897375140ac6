// Package config loads repository settings from a YAML file, with
// environment overrides (DOCDEPOT_* variables), and lowers them to
// repository construction options.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docdepot/docdepot/pkg/dlogger"
	"github.com/docdepot/docdepot/pkg/model"
	"github.com/docdepot/docdepot/pkg/repo"
	"github.com/spf13/viper"
)

const envPrefix = "DOCDEPOT"

// Config collects the tunables of a repository
type Config struct {
	// Root is the repository root directory
	Root string `mapstructure:"root"`

	// DirMode is the octal permission mode applied to created directories
	DirMode string `mapstructure:"dir_mode"`

	// StartRevision numbers the first revision of new documents
	StartRevision int64 `mapstructure:"start_revision"`

	// LogLevel is one of the dlogger level names
	LogLevel string `mapstructure:"log_level"`
}

// Load reads the configuration file when one is given, then applies
// environment overrides and defaults.
func Load(file string) (Config, error) {
	v := viper.New()
	v.SetDefault("dir_mode", "0700")
	v.SetDefault("start_revision", int64(model.FirstRevision))
	v.SetDefault("log_level", dlogger.LogLevelInfo)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	_ = v.BindEnv("root")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return c, nil
}

// Options lowers the configuration to repository construction options
func (c Config) Options() ([]repo.Option, error) {
	mode, err := strconv.ParseUint(c.DirMode, 8, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid dir_mode %q: %w", c.DirMode, err)
	}
	rev := model.RevisionID(c.StartRevision)
	if err = rev.Validate(); err != nil {
		return nil, fmt.Errorf("invalid start_revision: %w", err)
	}
	l, err := dlogger.New(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return []repo.Option{
		repo.WithDirMode(os.FileMode(mode)),
		repo.WithStartRevision(rev),
		repo.WithLogger(l),
	}, nil
}
