// Package config loads the settings shared by every leightbox command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName = "leightbox"

	defaultTickRate = 200 * time.Millisecond
	defaultTitle    = "leightbox"
	defaultLogFile  = "debug.log"
)

// Keys as they appear in the config file. Flags with the same name, dashes
// for underscores, override them.
const (
	KeyTickRate = "tick_rate"
	KeyTitle    = "title"
	KeyLogFile  = "log_file"
	KeyDebug    = "debug"
)

type Config struct {
	TickRate time.Duration `mapstructure:"tick_rate"`
	Title    string        `mapstructure:"title"`
	LogFile  string        `mapstructure:"log_file"`
	Debug    bool          `mapstructure:"debug"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		TickRate: defaultTickRate,
		Title:    defaultTitle,
		LogFile:  defaultLogFile,
		Debug:    false,
	}
}

// Load reads the configuration. An explicit path must exist; otherwise
// config.yaml is looked up under $XDG_CONFIG_HOME/leightbox and
// ~/.config/leightbox, and a missing file leaves the defaults in place.
// LEIGHTBOX_* environment variables override the file, and flags that were
// set on the command line override both.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyTickRate, defaultTickRate)
	v.SetDefault(KeyTitle, defaultTitle)
	v.SetDefault(KeyLogFile, defaultLogFile)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyTickRate, KeyTitle, KeyLogFile, KeyDebug} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, appName))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return errors.New("tick_rate must be positive")
	}
	if c.LogFile == "" {
		return errors.New("log_file cannot be empty")
	}
	return nil
}
