package completion

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"tableflow/internal/config"
)

// Detect builds a client from config. An explicit provider name wins; a bare
// configured key selects openai. Otherwise the environment is checked in
// priority order OPENAI_API_KEY, GEMINI_API_KEY. A configured key is never
// overridden by the environment.
func Detect(cfg *config.Config, log *zap.Logger) (Client, error) {
	name := cfg.Provider.Name
	apiKey := cfg.Provider.APIKey

	if name == "" && apiKey != "" {
		name = "openai"
	}
	if name == "" {
		switch {
		case envKey("OPENAI_API_KEY") != "":
			name, apiKey = "openai", envKey("OPENAI_API_KEY")
		case envKey("GEMINI_API_KEY") != "":
			name, apiKey = "gemini", envKey("GEMINI_API_KEY")
		default:
			return nil, fmt.Errorf("no completion provider configured: set OPENAI_API_KEY or GEMINI_API_KEY")
		}
	}
	if apiKey == "" {
		apiKey = envKey(keyVarFor(name))
	}

	switch name {
	case "openai":
		c := DefaultOpenAIConfig(apiKey)
		c.BaseURL = orDefault(cfg.Provider.BaseURL, c.BaseURL)
		c.Model = orDefault(cfg.Provider.Model, c.Model)
		c.Timeout = cfg.ProviderTimeout()
		c.MaxRetries = cfg.Retry.MaxRetries
		c.RetryBaseWait = cfg.RetryBaseWait()
		return NewOpenAIClient(c, log), nil
	case "gemini":
		c := DefaultGeminiConfig(apiKey)
		c.BaseURL = orDefault(cfg.Provider.BaseURL, c.BaseURL)
		c.Model = orDefault(cfg.Provider.Model, c.Model)
		c.Timeout = cfg.ProviderTimeout()
		c.MaxRetries = cfg.Retry.MaxRetries
		c.RetryBaseWait = cfg.RetryBaseWait()
		return NewGeminiClient(c, log), nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", name)
	}
}

func keyVarFor(provider string) string {
	switch provider {
	case "gemini":
		return "GEMINI_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

func envKey(name string) string {
	return os.Getenv(name)
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
