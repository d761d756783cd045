// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"time"

	"promptpilot/internal/metrics"
)

// Result is the outcome of one generation attempt. Exactly one of Text or
// Err is meaningful; callers branch on OK.
type Result struct {
	Text     string
	Provider string
	Duration time.Duration
	Err      error
}

// OK reports whether the provider produced text.
func (r Result) OK() bool {
	return r.Err == nil
}

// Client makes a single attempt against the registry's active provider and
// folds every failure into a Result. There is no retry.
type Client struct {
	registry *Registry
}

// NewClient creates a client over the given registry.
func NewClient(registry *Registry) *Client {
	return &Client{registry: registry}
}

// Generate calls the active provider once.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) Result {
	res := Result{Provider: c.registry.ActiveName()}

	p, err := c.registry.Active()
	if err != nil {
		res.Err = err
		metrics.ObserveProviderRequest(res.Provider, resultLabel(err), 0)
		return res
	}

	start := time.Now()
	res.Text, res.Err = p.Generate(ctx, systemPrompt, userPrompt)
	res.Duration = time.Since(start)

	metrics.ObserveProviderRequest(res.Provider, resultLabel(res.Err), res.Duration)
	return res
}

// resultLabel maps an error to the provider_requests_total result label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	default:
		return "error"
	}
}
