package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type ExecConfig struct {
	// DefaultTimeout is the run-phase deadline in seconds applied when a
	// request carries none.
	DefaultTimeout int `mapstructure:"default_timeout"`
	// TempRoot is where per-request workspaces are created.
	TempRoot string `mapstructure:"temp_root"`
	// Toolchains optionally points at a YAML file overriding or extending
	// the builtin language table.
	Toolchains string `mapstructure:"toolchains"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Exec   ExecConfig   `mapstructure:"exec"`
}

// Load reads runbox.yaml if present and applies env overrides. The config
// file is optional; defaults plus environment are enough to run.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("runbox")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.runbox")

	v.SetDefault("server.port", 8004)
	v.SetDefault("exec.default_timeout", 10)
	v.SetDefault("exec.temp_root", os.TempDir())

	// The service has always taken its listen port from PORT.
	v.BindEnv("server.port", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}
