// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"fmt"
	"strings"

	"promptpilot/internal/models"
)

// Fallback builds a ready-to-use prompt from the templates alone, without
// any network access. Line order is fixed; the same request always yields
// the same text.
func (c *Composer) Fallback(req models.GenerationRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a %s prompt about: \"%s\"\n\n", req.Type, req.Topic)
	fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	fmt.Fprintf(&b, "Complexity: %s\n\n", c.tables.ComplexityLabel(req.Complexity))

	b.WriteString(c.tables.Guidance(req.Type))
	b.WriteString("\n")

	if req.IncludeExamples {
		b.WriteString("Include relevant examples to illustrate key points.\n")
	}
	if req.StepByStep {
		b.WriteString("Present information in a clear, step-by-step format.\n")
	}
	if req.IncludeQuestions {
		b.WriteString("Incorporate thought-provoking questions for engagement.\n")
	}

	if req.CustomInstructions != "" {
		fmt.Fprintf(&b, "\nAdditional Requirements: %s\n", req.CustomInstructions)
	}

	b.WriteString("\n")
	b.WriteString(c.tables.ModelClosing(req.Model))
	return b.String()
}
