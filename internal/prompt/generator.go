// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"context"
	"log/slog"

	"promptpilot/internal/ai"
	"promptpilot/internal/metrics"
	"promptpilot/internal/models"
)

// FallbackWarning is attached to every template-generated prompt.
const FallbackWarning = "AI service unavailable, using template-based generation"

// TextGenerator is the outbound generation call. *ai.Client satisfies it.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) ai.Result
}

// UsageRecorder counts served prompts by source. May be nil.
type UsageRecorder interface {
	Record(ctx context.Context, source models.Source)
}

// Generator composes the provider prompts, makes one provider attempt and
// falls back to the templates when it fails.
type Generator struct {
	composer *Composer
	client   TextGenerator
	usage    UsageRecorder
}

// NewGenerator wires a generator. usage may be nil when counters are disabled.
func NewGenerator(composer *Composer, client TextGenerator, usage UsageRecorder) *Generator {
	return &Generator{composer: composer, client: client, usage: usage}
}

// Generate always returns a prompt: AI text when the provider succeeds,
// otherwise the template fallback with a warning.
func (g *Generator) Generate(ctx context.Context, req models.GenerationRequest) models.GeneratedPrompt {
	res := g.client.Generate(ctx, g.composer.System(req), g.composer.User(req))

	var out models.GeneratedPrompt
	if res.OK() {
		out = models.GeneratedPrompt{Text: res.Text, Source: models.SourceAI}
	} else {
		slog.Warn("ai generation failed, using fallback",
			"provider", res.Provider,
			"error", res.Err,
		)
		out = models.GeneratedPrompt{
			Text:    g.composer.Fallback(req),
			Source:  models.SourceFallback,
			Warning: FallbackWarning,
		}
	}

	metrics.IncGeneration(string(out.Source))
	if g.usage != nil {
		g.usage.Record(ctx, out.Source)
	}
	return out
}
