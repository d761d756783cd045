package handlers

import (
	"strings"
	"testing"

	"promptpilot/internal/models"
)

func TestValidateGeneration(t *testing.T) {
	tests := []struct {
		name    string
		req     models.GenerationRequest
		wantErr string
	}{
		{"valid", models.GenerationRequest{Topic: "unit testing"}, ""},
		{"empty topic", models.GenerationRequest{}, "Topic is required"},
		{"whitespace topic", models.GenerationRequest{Topic: " \t\n"}, "Topic is required"},
		{"topic at limit", models.GenerationRequest{Topic: strings.Repeat("a", 1000)}, ""},
		{"topic too long", models.GenerationRequest{Topic: strings.Repeat("a", 1001)}, "Topic is too long (max 1,000 characters)"},
		{"multibyte topic counted by rune", models.GenerationRequest{Topic: strings.Repeat("é", 1000)}, ""},
		{"instructions too long", models.GenerationRequest{Topic: "x", CustomInstructions: strings.Repeat("a", 5001)}, "Custom instructions are too long (max 5,000 characters)"},
		{"model too long", models.GenerationRequest{Topic: "x", Model: strings.Repeat("m", 101)}, "Model is too long (max 100 characters)"},
		{"type too long", models.GenerationRequest{Topic: "x", Type: strings.Repeat("t", 101)}, "Type is too long (max 100 characters)"},
		{"tone too long", models.GenerationRequest{Topic: "x", Tone: strings.Repeat("t", 101)}, "Tone is too long (max 100 characters)"},
		{"unknown selectors allowed", models.GenerationRequest{Topic: "x", Model: "llama", Type: "haiku", Tone: "sarcastic"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateGeneration(tt.req); got != tt.wantErr {
				t.Errorf("validateGeneration: got %q, want %q", got, tt.wantErr)
			}
		})
	}
}
