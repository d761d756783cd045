// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"math"
)

// Source tags where a generated prompt came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Complexity is the requested detail level, 1 (very simple) to 5 (very
// complex). Any value outside that range is treated as unknown by the
// prompt tables.
type Complexity int

// UnmarshalJSON accepts integral JSON numbers. Strings, fractions, booleans
// and null decode to zero so the tables fall back to their defaults instead
// of rejecting the form.
func (c *Complexity) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		*c = 0
		return nil
	}
	*c = Complexity(f)
	return nil
}

// Flag is an on/off option from the form. Loose values are accepted:
// false, 0, "", null, [] and {} are off, anything else is on.
type Flag bool

// UnmarshalJSON decodes any JSON value into a Flag.
func (f *Flag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Flag(truthy(v))
	return nil
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	}
	return true
}

// GenerationRequest is the form submitted by the prompt builder UI.
// Every field except Topic is optional.
type GenerationRequest struct {
	Topic              string     `json:"topic"`
	Model              string     `json:"model"`
	Type               string     `json:"type"`
	Tone               string     `json:"tone"`
	Complexity         Complexity `json:"complexity"`
	IncludeExamples    Flag       `json:"include_examples"`
	StepByStep         Flag       `json:"step_by_step"`
	IncludeQuestions   Flag       `json:"include_questions"`
	CustomInstructions string     `json:"custom_instructions"`
}

// GeneratedPrompt is the result of one generation: the prompt text, where
// it came from, and a warning when the AI provider could not be used.
type GeneratedPrompt struct {
	Text    string
	Source  Source
	Warning string
}
