// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prompt turns a prompt builder form into text: the system and user
// instructions sent to the AI provider, and the template-only fallback used
// when the provider cannot be reached.
package prompt

import "promptpilot/internal/models"

// Tables holds the static phrase lookups used to describe a request.
// Built once by DefaultTables and shared read-only between requests.
type Tables struct {
	ComplexityPhrases map[models.Complexity]string
	ComplexityLabels  map[models.Complexity]string
	TonePhrases       map[string]string
	TypePhrases       map[string]string
	TypeGuidance      map[string]string
	ModelClosings     map[string]string
}

// Defaults used when a lookup misses.
const (
	defaultComplexityPhrase = "medium"
	defaultComplexityLabel  = "Medium"
	defaultModelClosing     = "Provide a comprehensive, well-structured prompt that will yield high-quality results."
)

// DefaultTables returns the phrase tables for the supported prompt types,
// tones, complexity levels and image models.
func DefaultTables() *Tables {
	return &Tables{
		ComplexityPhrases: map[models.Complexity]string{
			1: "very simple and basic",
			2: "simple and straightforward",
			3: "medium complexity with good detail",
			4: "complex and detailed",
			5: "very complex and highly detailed",
		},
		ComplexityLabels: map[models.Complexity]string{
			1: "Very Simple",
			2: "Simple",
			3: "Medium",
			4: "Complex",
			5: "Very Complex",
		},
		TonePhrases: map[string]string{
			"professional": "professional and formal",
			"casual":       "casual and friendly",
			"academic":     "academic and scholarly",
			"persuasive":   "persuasive and convincing",
			"humorous":     "humorous and witty",
			"inspiring":    "inspiring and motivational",
		},
		TypePhrases: map[string]string{
			"creative":       "creative writing",
			"technical":      "technical explanation",
			"business":       "business and marketing",
			"educational":    "educational content",
			"conversational": "conversational dialogue",
			"analytical":     "data analysis",
		},
		TypeGuidance: map[string]string{
			"creative":       "Please create engaging and imaginative content.",
			"technical":      "Focus on accuracy, clarity, and depth of explanation.",
			"business":       "Emphasize practical applications and ROI considerations.",
			"educational":    "Structure content for optimal learning and retention.",
			"conversational": "Make it feel like a natural, engaging conversation.",
			"analytical":     "Focus on data interpretation and actionable insights.",
		},
		ModelClosings: map[string]string{
			"midjourney": "Format the response as a ready-to-use Midjourney prompt with appropriate parameters.",
			"dalle":      "Format as a detailed DALL-E prompt with specific visual descriptions.",
		},
	}
}

// lookup returns m[key], or def when the key is absent.
func lookup[K comparable](m map[K]string, key K, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// ComplexityPhrase describes a complexity level for the system prompt.
func (t *Tables) ComplexityPhrase(c models.Complexity) string {
	return lookup(t.ComplexityPhrases, c, defaultComplexityPhrase)
}

// ComplexityLabel is the short title-case label used in fallback prompts.
func (t *Tables) ComplexityLabel(c models.Complexity) string {
	return lookup(t.ComplexityLabels, c, defaultComplexityLabel)
}

// TonePhrase describes a tone, or echoes an unknown tone unchanged.
func (t *Tables) TonePhrase(tone string) string {
	return lookup(t.TonePhrases, tone, tone)
}

// TypePhrase describes a prompt type, or echoes an unknown type unchanged.
func (t *Tables) TypePhrase(promptType string) string {
	return lookup(t.TypePhrases, promptType, promptType)
}

// Guidance is the one-sentence instruction for a prompt type.
// Unknown types get an empty string.
func (t *Tables) Guidance(promptType string) string {
	return lookup(t.TypeGuidance, promptType, "")
}

// ModelClosing is the final line of a fallback prompt for the target model.
func (t *Tables) ModelClosing(model string) string {
	return lookup(t.ModelClosings, model, defaultModelClosing)
}
