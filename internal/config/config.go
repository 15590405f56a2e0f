// Package config loads service configuration from file, environment, and
// flags via viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "matchengine"

// Config holds the settings of the matching service. Every field has a
// default; a config file and MATCHENGINE_* environment variables override
// it.
type Config struct {
	// Listen is the address the HTTP API binds to.
	Listen string `mapstructure:"listen"`
	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
	// Debug enables debug-level logging.
	Debug bool `mapstructure:"debug"`
	// JSON switches logging to the JSON encoder.
	JSON bool `mapstructure:"json"`
	// ExtraPatterns are additional skill patterns appended to the built-in
	// catalog at startup.
	ExtraPatterns []string `mapstructure:"extra-patterns"`
}

// Load reads configuration. When cfgFile is empty, matchengine.yaml in the
// current directory is used if present; a missing default file is not an
// error.
func Load(cfgFile string) (*Config, error) {
	viper.SetDefault("listen", ":8081")
	viper.SetDefault("shutdown-timeout", 30*time.Second)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		viper.SetConfigName(envPrefix)
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
