// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"promptpilot/internal/ai"
)

// DefaultAllowedOrigins are the browser origins allowed when
// CORS_ALLOWED_ORIGINS is unset.
var DefaultAllowedOrigins = []string{
	"https://yourdomain.com",
	"http://yourdomain.com",
	"https://www.yourdomain.com",
}

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Browser origins allowed by CORS. Never empty.
	AllowedOrigins []string

	// Valkey (Redis-compatible) for usage counters. Empty host disables them.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// AI provider settings
	AIProvider string // "deepseek", "openai", "mistral", "claude"
	AITimeout  time.Duration

	DeepSeekKey     string
	DeepSeekModel   string
	DeepSeekBaseURL string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	MistralKey     string
	MistralModel   string
	MistralBaseURL string

	ClaudeKey     string
	ClaudeModel   string
	ClaudeBaseURL string
}

// Load reads configuration from environment variables, applying defaults
// where appropriate. A missing API key is not an error: generation then
// falls back to the templates.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("PORT", "5000"),
		Env:  envOrDefault("APP_ENV", "development"),

		AllowedOrigins: parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AIProvider: strings.ToLower(envOrDefault("AI_PROVIDER", ai.ProviderDeepSeek)),

		DeepSeekKey:     os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekModel:   envOrDefault("DEEPSEEK_MODEL", "deepseek-chat"),
		DeepSeekBaseURL: envOrDefault("DEEPSEEK_BASE_URL", "https://api.deepseek.com"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOrDefault("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL: envOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),

		MistralKey:     os.Getenv("MISTRAL_API_KEY"),
		MistralModel:   envOrDefault("MISTRAL_MODEL", "mistral-large-latest"),
		MistralBaseURL: envOrDefault("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),

		ClaudeKey:     os.Getenv("CLAUDE_API_KEY"),
		ClaudeModel:   envOrDefault("CLAUDE_MODEL", "claude-sonnet-4-6"),
		ClaudeBaseURL: envOrDefault("CLAUDE_BASE_URL", "https://api.anthropic.com"),
	}

	timeout, err := time.ParseDuration(envOrDefault("AI_TIMEOUT", ai.DefaultTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("AI_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.AITimeout = timeout

	if !ai.KnownProvider(cfg.AIProvider) {
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", cfg.AIProvider)
	}

	return cfg, nil
}

// ProviderConfigs returns the per-provider settings for ai.NewRegistry.
func (c *Config) ProviderConfigs() map[string]ai.ProviderConfig {
	return map[string]ai.ProviderConfig{
		ai.ProviderDeepSeek: {APIKey: c.DeepSeekKey, Model: c.DeepSeekModel, BaseURL: c.DeepSeekBaseURL, Timeout: c.AITimeout},
		ai.ProviderOpenAI:   {APIKey: c.OpenAIKey, Model: c.OpenAIModel, BaseURL: c.OpenAIBaseURL, Timeout: c.AITimeout},
		ai.ProviderMistral:  {APIKey: c.MistralKey, Model: c.MistralModel, BaseURL: c.MistralBaseURL, Timeout: c.AITimeout},
		ai.ProviderClaude:   {APIKey: c.ClaudeKey, Model: c.ClaudeModel, BaseURL: c.ClaudeBaseURL, Timeout: c.AITimeout},
	}
}

// UsageEnabled reports whether Valkey usage counters are configured.
func (c *Config) UsageEnabled() bool {
	return c.ValkeyHost != ""
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// parseOrigins splits a comma-separated origin list. An empty result falls
// back to DefaultAllowedOrigins, because an empty allow-list would let every
// origin through.
func parseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return append([]string(nil), DefaultAllowedOrigins...)
	}
	return origins
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
