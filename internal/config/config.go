// Package config resolves casetracker settings from flags, CASETRACKER_*
// environment variables, an optional YAML file, and defaults, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "CASETRACKER"

// Config holds every runtime setting.
type Config struct {
	Source      string
	LoadTimeout time.Duration
	LogFile     string
	LogLevel    string

	// File is the config file that was read, if any.
	File string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:      "./master.json",
		LoadTimeout: 10 * time.Second,
		LogFile:     "",
		LogLevel:    "info",
	}
}

// BindFlags registers the persistent flags that override config values.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "config file (default: $HOME/.casetracker/config.yaml)")
	fs.String("source", d.Source, "case data source: path, file:// or http(s) URL")
	fs.Duration("load-timeout", d.LoadTimeout, "maximum time to wait for case data (0 disables)")
	fs.String("log-file", d.LogFile, "write logs to this file instead of stderr")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn, error")
}

// Load resolves the configuration. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("source", d.Source)
	v.SetDefault("load_timeout", d.LoadTimeout)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	var cfgFile string
	if fs != nil {
		for key, flag := range map[string]string{
			"source":       "source",
			"load_timeout": "load-timeout",
			"log_file":     "log-file",
			"log_level":    "log-level",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}
		cfgFile, _ = fs.GetString("config")
	}

	explicit := cfgFile != ""
	if explicit {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".casetracker"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		Source:      v.GetString("source"),
		LoadTimeout: v.GetDuration("load_timeout"),
		LogFile:     v.GetString("log_file"),
		LogLevel:    v.GetString("log_level"),
		File:        v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no component can work with.
func (c Config) Validate() error {
	if c.Source == "" {
		return errors.New("config: source is required")
	}
	if c.LoadTimeout < 0 {
		return fmt.Errorf("config: load_timeout must not be negative, got %s", c.LoadTimeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	return nil
}

// yamlView is the on-disk shape of the config file.
type yamlView struct {
	Source      string `yaml:"source"`
	LoadTimeout string `yaml:"load_timeout"`
	LogFile     string `yaml:"log_file"`
	LogLevel    string `yaml:"log_level"`
}

// YAML renders the settings in config-file form.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(yamlView{
		Source:      c.Source,
		LoadTimeout: c.LoadTimeout.String(),
		LogFile:     c.LogFile,
		LogLevel:    c.LogLevel,
	})
}
