// Package config loads settings from, in increasing precedence:
// built-in defaults, a YAML file, CARDQ_ environment variables, and
// command-line flags. The merged result is validated before use.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix namespaces environment variables, e.g. CARDQ_LISTEN or
// CARDQ_QUIZ__SIZE (double underscore nests).
const envPrefix = "CARDQ_"

// Config is the full application configuration.
type Config struct {
	Listen   string `koanf:"listen" validate:"required,hostname_port"`
	DBPath   string `koanf:"db" validate:"required"`
	ReposDir string `koanf:"repos_dir" validate:"required"`
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`
	Quiz     Quiz   `koanf:"quiz"`
}

// Quiz holds the default quiz parameters used when a request doesn't
// override them.
type Quiz struct {
	Size int    `koanf:"size" validate:"min=1"`
	Mode string `koanf:"mode" validate:"oneof=multipleChoice typed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:   "localhost:8990",
		DBPath:   "cardq.db",
		ReposDir: "repos",
		LogLevel: "info",
		Quiz: Quiz{
			Size: 10,
			Mode: "multipleChoice",
		},
	}
}

// Load merges the config file (when path is non-empty), environment,
// and flags over the defaults, then validates the result.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return cfg, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return cfg, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func envToKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
