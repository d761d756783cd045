// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"fmt"
	"strings"

	"promptpilot/internal/models"
)

const (
	systemPreamble = "You are a professional AI prompt engineer. Create optimized, ready-to-use prompts based on these specifications:"
	systemClosing  = "Create a prompt that is clear, specific, and will yield high-quality results from the target AI model."
	userHeader     = "Create an AI prompt with these specifications:"
	userClosing    = "Provide only the final optimized prompt, ready to be used with the specified AI model."
)

// Composer builds prompt text from a request and the phrase tables.
// All methods are pure and safe for concurrent use.
type Composer struct {
	tables *Tables
}

// NewComposer creates a Composer over the given tables.
func NewComposer(tables *Tables) *Composer {
	return &Composer{tables: tables}
}

// System builds the instruction that sets up the model as a prompt engineer
// for the requested target model, type, tone and complexity.
func (c *Composer) System(req models.GenerationRequest) string {
	return fmt.Sprintf(`%s

- Model: %s
- Type: %s
- Tone: %s
- Complexity: %s

%s`,
		systemPreamble,
		strings.ToUpper(req.Model),
		c.tables.TypePhrase(req.Type),
		c.tables.TonePhrase(req.Tone),
		c.tables.ComplexityPhrase(req.Complexity),
		systemClosing,
	)
}

// User builds the user message listing the topic and the selected options.
func (c *Composer) User(req models.GenerationRequest) string {
	components := []string{"Topic: " + req.Topic}

	if req.IncludeExamples {
		components = append(components, "Include relevant examples")
	}
	if req.StepByStep {
		components = append(components, "Use step-by-step format")
	}
	if req.IncludeQuestions {
		components = append(components, "Include follow-up questions")
	}
	if req.CustomInstructions != "" {
		components = append(components, "Additional requirements: "+req.CustomInstructions)
	}

	var b strings.Builder
	b.WriteString(userHeader)
	for _, comp := range components {
		b.WriteString("\n- ")
		b.WriteString(comp)
	}
	b.WriteString("\n\n")
	b.WriteString(userClosing)
	return b.String()
}
