package models

import (
	"encoding/json"
	"testing"
)

// TestComplexityUnmarshal verifies that only integral numbers survive
// decoding and everything else becomes zero (unknown).
func TestComplexityUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Complexity
	}{
		{name: "integer", input: `{"complexity": 3}`, want: 3},
		{name: "integral float", input: `{"complexity": 4.0}`, want: 4},
		{name: "out of range kept", input: `{"complexity": 9}`, want: 9},
		{name: "negative kept", input: `{"complexity": -1}`, want: -1},
		{name: "fraction", input: `{"complexity": 2.5}`, want: 0},
		{name: "numeric string", input: `{"complexity": "3"}`, want: 0},
		{name: "boolean", input: `{"complexity": true}`, want: 0},
		{name: "null", input: `{"complexity": null}`, want: 0},
		{name: "missing", input: `{}`, want: 0},
		{name: "huge", input: `{"complexity": 1e20}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GenerationRequest
			if err := json.Unmarshal([]byte(tt.input), &req); err != nil {
				t.Fatalf("Unmarshal(%s): unexpected error: %v", tt.input, err)
			}
			if req.Complexity != tt.want {
				t.Errorf("Complexity = %d, want %d", req.Complexity, tt.want)
			}
		})
	}
}

// TestGenerationRequestFieldNames verifies the snake_case JSON names the
// browser form sends.
func TestGenerationRequestFieldNames(t *testing.T) {
	body := `{
		"topic": "cats",
		"model": "gpt-4",
		"type": "creative",
		"tone": "casual",
		"complexity": 2,
		"include_examples": true,
		"step_by_step": true,
		"include_questions": true,
		"custom_instructions": "keep it short"
	}`

	var req GenerationRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := GenerationRequest{
		Topic:              "cats",
		Model:              "gpt-4",
		Type:               "creative",
		Tone:               "casual",
		Complexity:         2,
		IncludeExamples:    true,
		StepByStep:         true,
		IncludeQuestions:   true,
		CustomInstructions: "keep it short",
	}
	if req != want {
		t.Errorf("decoded request:\n got  %+v\n want %+v", req, want)
	}
}

// TestFlagUnmarshal verifies that option flags accept loose truthy values
// instead of rejecting the request.
func TestFlagUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Flag
	}{
		{name: "true", input: `true`, want: true},
		{name: "false", input: `false`, want: false},
		{name: "one", input: `1`, want: true},
		{name: "zero", input: `0`, want: false},
		{name: "fraction", input: `0.5`, want: true},
		{name: "non-empty string", input: `"yes"`, want: true},
		{name: "string false is still set", input: `"false"`, want: true},
		{name: "empty string", input: `""`, want: false},
		{name: "null", input: `null`, want: false},
		{name: "empty array", input: `[]`, want: false},
		{name: "array", input: `[0]`, want: true},
		{name: "empty object", input: `{}`, want: false},
		{name: "object", input: `{"a":1}`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GenerationRequest
			body := `{"topic":"cats","include_examples":` + tt.input + `}`
			if err := json.Unmarshal([]byte(body), &req); err != nil {
				t.Fatalf("Unmarshal(%s): unexpected error: %v", body, err)
			}
			if req.IncludeExamples != tt.want {
				t.Errorf("IncludeExamples = %v, want %v", req.IncludeExamples, tt.want)
			}
		})
	}
}

func TestFlagMissingIsOff(t *testing.T) {
	var req GenerationRequest
	if err := json.Unmarshal([]byte(`{"topic":"cats"}`), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if req.IncludeExamples || req.StepByStep || req.IncludeQuestions {
		t.Errorf("flags should default to off, got %+v", req)
	}
}
