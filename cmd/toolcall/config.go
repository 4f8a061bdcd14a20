package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the CLI configuration, read from an optional YAML file and
// TOOLCALL_* environment variables (e.g. TOOLCALL_EXECUTOR_TIMEOUT=2s).
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Executor ExecutorConfig `mapstructure:"executor"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type ExecutorConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Offload bool          `mapstructure:"offload"`
}

// newViper returns a viper instance with defaults and env binding applied.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("executor.timeout", "30s")
	v.SetDefault("executor.offload", false)

	v.SetEnvPrefix("TOOLCALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads path, or toolcall.yaml from the working directory when path
// is empty. A missing default file is not an error; a missing explicit one is.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("toolcall")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Executor.Timeout < 0 {
		return nil, fmt.Errorf("executor.timeout must not be negative, got %s", cfg.Executor.Timeout)
	}
	return &cfg, nil
}
