package handlers

import (
	"strings"
	"unicode/utf8"

	"promptpilot/internal/models"
)

// Validation limits for generation request fields.
const (
	maxBodyBytes       = 64 << 10
	maxTopicLen        = 1_000
	maxInstructionsLen = 5_000
	maxSelectorLen     = 100
)

// validateGeneration checks a decoded generation request and returns the
// first error found, or "" when the request is acceptable.
func validateGeneration(req models.GenerationRequest) string {
	// Stricter than a plain emptiness check: whitespace-only topics are
	// rejected too.
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return "Topic is required"
	}
	if utf8.RuneCountInString(topic) > maxTopicLen {
		return "Topic is too long (max 1,000 characters)"
	}
	if utf8.RuneCountInString(req.CustomInstructions) > maxInstructionsLen {
		return "Custom instructions are too long (max 5,000 characters)"
	}
	for _, f := range []struct{ name, value string }{
		{"Model", req.Model},
		{"Type", req.Type},
		{"Tone", req.Tone},
	} {
		if utf8.RuneCountInString(f.value) > maxSelectorLen {
			return f.name + " is too long (max 100 characters)"
		}
	}
	return ""
}
