// Package config loads logreturn settings from defaults, an optional YAML
// config file and LOGRETURN_* environment variables, in increasing order of
// precedence. Command-line flags bound to the same keys win over all three.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "LOGRETURN"

// Keys shared between the config file, the environment and flag bindings.
const (
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyWrite     = "write"
	KeyStrict    = "strict"
)

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	// Write saves edits back to the file instead of printing the document.
	Write bool `mapstructure:"write"`
	// Strict makes a run that toggles nothing exit with an error.
	Strict bool `mapstructure:"strict"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyWrite, false)
	v.SetDefault(KeyStrict, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultPath returns $HOME/.config/logreturn/config.yaml, or "" when the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "logreturn", "config.yaml")
}

// Load reads path into v and decodes the result. An empty path falls back to
// DefaultPath; a missing default file is not an error, a missing explicit
// one is.
func Load(v *viper.Viper, path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: want text or json", c.LogFormat)
	}
	return nil
}
