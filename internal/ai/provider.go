// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai talks to the external chat-completion providers (DeepSeek,
// OpenAI, Mistral, Claude). Each provider implements the Provider interface,
// and the Registry selects the active one by name.
package ai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Request limits shared by every provider.
const (
	MaxTokens      = 2000
	Temperature    = 0.7
	DefaultTimeout = 30 * time.Second
)

// Provider names accepted by NewRegistry and AI_PROVIDER.
const (
	ProviderDeepSeek = "deepseek"
	ProviderOpenAI   = "openai"
	ProviderMistral  = "mistral"
	ProviderClaude   = "claude"
)

// ErrNotConfigured is returned for every call when the active provider has
// no API key.
var ErrNotConfigured = errors.New("ai: provider not configured")

// Provider defines the interface that all AI providers must implement.
// Each provider handles its own HTTP communication and response parsing.
type Provider interface {
	// Generate sends one chat completion and returns the generated text.
	// systemPrompt sets the model's behaviour; userPrompt is the user's request.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider identifier (e.g., "deepseek", "openai").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// timeout returns the configured HTTP timeout or DefaultTimeout.
func (c ProviderConfig) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// KnownProvider reports whether name is a provider this package can build.
func KnownProvider(name string) bool {
	switch name {
	case ProviderDeepSeek, ProviderOpenAI, ProviderMistral, ProviderClaude:
		return true
	}
	return false
}

// Registry holds the providers that have an API key and the name of the
// active one. It is built once at startup and never mutated, so it is safe
// for concurrent use without locking.
type Registry struct {
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry and initialises providers for every config
// that has a non-empty API key. Providers without keys are silently skipped.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case ProviderDeepSeek:
			r.providers[name] = newDeepSeek(cfg)
		case ProviderOpenAI:
			r.providers[name] = newOpenAI(cfg)
		case ProviderMistral:
			r.providers[name] = newMistral(cfg)
		case ProviderClaude:
			r.providers[name] = newClaude(cfg)
		}
	}

	return r
}

// Active returns the currently active provider. The error wraps
// ErrNotConfigured when the provider has no API key.
func (r *Registry) Active() (Provider, error) {
	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("%w: no API key for %q", ErrNotConfigured, r.active)
	}
	return p, nil
}

// ActiveName returns the name of the active provider.
func (r *Registry) ActiveName() string {
	return r.active
}

// Available returns the sorted names of all providers that have API keys.
func (r *Registry) Available() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	_, ok := r.providers[name]
	return ok
}
