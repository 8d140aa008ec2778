package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// envConfig mirrors RawConfig. Values are kept as strings so that an
// unset variable stays distinguishable from an explicit zero.
type envConfig struct {
	Seed     string `env:"WYRAND_SEED"`
	Count    string `env:"WYRAND_COUNT"`
	Width    string `env:"WYRAND_WIDTH"`
	Bytes    string `env:"WYRAND_BYTES"`
	Format   string `env:"WYRAND_FORMAT"`
	State    string `env:"WYRAND_STATE"`
	LogLevel string `env:"WYRAND_LOG_LEVEL"`
}

// Load merges defaults <- file <- environment. An empty path or a missing
// file contributes nothing.
func Load(path string) (RawConfig, error) {
	fileCfg, err := ReadFile(path)
	if err != nil {
		return RawConfig{}, fmt.Errorf("read config: %w", err)
	}
	envCfg, err := FromEnv()
	if err != nil {
		return RawConfig{}, err
	}
	return Merge(Merge(Defaults(), fileCfg), envCfg), nil
}

// ReadFile loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func ReadFile(path string) (RawConfig, error) {
	var cfg RawConfig
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv reads the WYRAND_* variables.
func FromEnv() (RawConfig, error) {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return RawConfig{}, fmt.Errorf("parse env: %w", err)
	}
	cfg := RawConfig{Format: e.Format, State: e.State, LogLevel: e.LogLevel}
	var err error
	if cfg.Seed, err = ParseSeed(e.Seed); err != nil {
		return RawConfig{}, fmt.Errorf("WYRAND_SEED: %w", err)
	}
	if cfg.Count, err = parseInt(e.Count); err != nil {
		return RawConfig{}, fmt.Errorf("WYRAND_COUNT: %w", err)
	}
	if cfg.Width, err = parseInt(e.Width); err != nil {
		return RawConfig{}, fmt.Errorf("WYRAND_WIDTH: %w", err)
	}
	if cfg.Bytes, err = parseInt(e.Bytes); err != nil {
		return RawConfig{}, fmt.Errorf("WYRAND_BYTES: %w", err)
	}
	return cfg, nil
}

// ParseSeed accepts decimal, 0x hex, 0o octal or 0b binary. Empty means unset.
func ParseSeed(s string) (*uint64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Merge returns a with every field set in b overriding it.
func Merge(a, b RawConfig) RawConfig {
	out := a
	if b.Seed != nil {
		out.Seed = b.Seed
	}
	if b.Count != nil {
		out.Count = b.Count
	}
	if b.Width != nil {
		out.Width = b.Width
	}
	if b.Bytes != nil {
		out.Bytes = b.Bytes
	}
	if b.Format != "" {
		out.Format = b.Format
	}
	if b.State != "" {
		out.State = b.State
	}
	if b.LogLevel != "" {
		out.LogLevel = b.LogLevel
	}
	return out
}
