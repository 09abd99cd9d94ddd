// Package config holds all tableflow configuration: provider selection,
// connection settings, and per-stage generation tuning. Settings load from an
// optional YAML file and are overlaid with environment variables, so a bare
// OPENAI_API_KEY is enough to run.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Provider Provider     `yaml:"provider"`
	Stages   StagesConfig `yaml:"stages"`
	Retry    RetryConfig  `yaml:"retry"`
}

// Provider configures the completion service connection.
type Provider struct {
	Name    string `yaml:"name"` // openai, gemini; empty = detect from env
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"` // Go duration string
}

// StageConfig tunes one generation stage.
type StageConfig struct {
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// StagesConfig holds per-stage tuning. Structure covers the dataset
// relevance check; the other three map to the generated sheets.
type StagesConfig struct {
	Structure StageConfig `yaml:"structure"`
	Module    StageConfig `yaml:"module"`
	Table     StageConfig `yaml:"table"`
	Dashboard StageConfig `yaml:"dashboard"`
}

// RetryConfig bounds completion retries.
type RetryConfig struct {
	MaxRetries int    `yaml:"max_retries"`
	BaseWait   string `yaml:"base_wait"` // Go duration string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Provider: Provider{
			Timeout: "2m",
		},
		Stages: StagesConfig{
			Structure: StageConfig{Temperature: 0, MaxTokens: 16000},
			Module:    StageConfig{Temperature: 0.5, MaxTokens: 4096},
			Table:     StageConfig{Temperature: 0.5, MaxTokens: 8192},
			Dashboard: StageConfig{Temperature: 0.3, MaxTokens: 8192},
		},
		Retry: RetryConfig{MaxRetries: 3, BaseWait: "2s"},
	}
}

// Load reads configuration from an optional YAML file and overlays
// environment variables. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables onto the config. Variable names
// follow the project's established dotenv convention.
func (c *Config) applyEnv() {
	setString(&c.Provider.Name, "TABLEFLOW_PROVIDER")
	setString(&c.Provider.Model, "OPENAI_MODEL")
	setString(&c.Provider.BaseURL, "OPENAI_BASE_URL")

	setFloat(&c.Stages.Structure.Temperature, "OPENAI_TEMPERATURE_STRUCTURE")
	setFloat(&c.Stages.Module.Temperature, "OPENAI_TEMPERATURE_MODULE")
	setFloat(&c.Stages.Table.Temperature, "OPENAI_TEMPERATURE_TABLE")
	setFloat(&c.Stages.Dashboard.Temperature, "OPENAI_TEMPERATURE_DASHBOARD")

	setInt(&c.Stages.Structure.MaxTokens, "OPENAI_MAX_TOKENS_STRUCTURE")
	setInt(&c.Stages.Module.MaxTokens, "OPENAI_MAX_TOKENS_MODULE")
	setInt(&c.Stages.Table.MaxTokens, "OPENAI_MAX_TOKENS_TABLE")
	setInt(&c.Stages.Dashboard.MaxTokens, "OPENAI_MAX_TOKENS_DASHBOARD")

	setInt(&c.Retry.MaxRetries, "OPENAI_MAX_RETRIES")
	if v := os.Getenv("OPENAI_RETRY_BASE_WAIT"); v != "" {
		// Accept bare seconds for dotenv compatibility, or a duration string.
		if secs, err := strconv.Atoi(v); err == nil {
			c.Retry.BaseWait = fmt.Sprintf("%ds", secs)
		} else {
			c.Retry.BaseWait = v
		}
	}
}

// ProviderTimeout parses the provider timeout, falling back to the default
// on a bad value.
func (c *Config) ProviderTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Provider.Timeout); err == nil && d > 0 {
		return d
	}
	return 2 * time.Minute
}

// RetryBaseWait parses the retry base wait, falling back to the default on a
// bad value.
func (c *Config) RetryBaseWait() time.Duration {
	if d, err := time.ParseDuration(c.Retry.BaseWait); err == nil && d > 0 {
		return d
	}
	return 2 * time.Second
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
