// Package config loads layered settings: built-in defaults, an optional YAML
// file, then NTRITION_* environment variables.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

// EnvPrefix prefixes every environment override. Nested keys use a double
// underscore, e.g. NTRITION_REMOTE__PAGE_SIZE.
const EnvPrefix = "NTRITION_"

//go:embed default.yaml
var defaultYAML []byte

type Remote struct {
	BaseURL       string        `koanf:"base_url" yaml:"base_url" validate:"required,url"`
	PageSize      int           `koanf:"page_size" yaml:"page_size" validate:"gte=1,lte=100"`
	Timeout       time.Duration `koanf:"timeout" yaml:"timeout" validate:"gt=0"`
	MaxTries      int           `koanf:"max_tries" yaml:"max_tries" validate:"gte=1,lte=10"`
	RetryInterval time.Duration `koanf:"retry_interval" yaml:"retry_interval" validate:"gte=0"`
	UserAgent     string        `koanf:"user_agent" yaml:"user_agent" validate:"required"`
	Offline       bool          `koanf:"offline" yaml:"offline"`
}

type Cache struct {
	Enabled    bool          `koanf:"enabled" yaml:"enabled"`
	SearchTTL  time.Duration `koanf:"search_ttl" yaml:"search_ttl" validate:"gte=0"`
	BarcodeTTL time.Duration `koanf:"barcode_ttl" yaml:"barcode_ttl" validate:"gte=0"`
}

type Config struct {
	Env    string      `koanf:"env" yaml:"env"`
	DBPath string      `koanf:"db_path" yaml:"db_path"`
	Remote Remote      `koanf:"remote" yaml:"remote"`
	Cache  Cache       `koanf:"cache" yaml:"cache"`
	Goals  model.Goals `koanf:"goals" yaml:"goals"`
}

type LoadOptions struct {
	// ConfigPath is an optional YAML file. A missing file is not an error
	// unless Required is set.
	ConfigPath string
	Required   bool
	// DotEnvPath is loaded into the process environment when it exists.
	DotEnvPath string
}

// Load resolves the configuration.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}

	if path := strings.TrimSpace(opts.ConfigPath); path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !opts.Required:
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := k.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	if path := strings.TrimSpace(opts.DotEnvPath); path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// envKey maps NTRITION_REMOTE__PAGE_SIZE to remote.page_size.
func envKey(k, v string) (string, any) {
	k = strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
	return strings.ReplaceAll(k, "__", "."), v
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	out, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
