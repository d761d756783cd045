// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON HTTP endpoints of the API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"promptpilot/internal/middleware"
	"promptpilot/internal/models"
	"promptpilot/internal/usage"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "AI Prompt Generator API"

// PromptGenerator turns a validated request into a prompt. *prompt.Generator
// satisfies it.
type PromptGenerator interface {
	Generate(ctx context.Context, req models.GenerationRequest) models.GeneratedPrompt
}

// StatsReader reads the usage counters. *usage.Counter satisfies it.
type StatsReader interface {
	Snapshot(ctx context.Context) (usage.Snapshot, error)
}

// API groups the HTTP handlers and their dependencies.
type API struct {
	generator PromptGenerator
	stats     StatsReader
}

// NewAPI creates the API handlers. stats may be nil when usage counters are
// disabled.
func NewAPI(generator PromptGenerator, stats StatsReader) *API {
	return &API{generator: generator, stats: stats}
}

type errorResponse struct {
	Error string `json:"error"`
}

type generateResponse struct {
	Success bool          `json:"success"`
	Prompt  string        `json:"prompt"`
	Source  models.Source `json:"source"`
	Warning string        `json:"warning,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type statsResponse struct {
	Enabled bool `json:"enabled"`
	*usage.Snapshot
}

// GeneratePrompt handles POST /api/generate-prompt. A request that passes
// validation always gets a prompt: from the AI provider when it answers,
// otherwise from the templates with a warning.
func (a *API) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req models.GenerationRequest
	if status, msg := decodeRequest(r.Body, &req); status != 0 {
		writeJSON(w, status, errorResponse{Error: msg})
		return
	}

	if msg := validateGeneration(req); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	out := a.generator.Generate(r.Context(), req)

	slog.Info("prompt generated",
		"source", out.Source,
		"model", req.Model,
		"type", req.Type,
		"request_id", middleware.RequestIDFromCtx(r.Context()),
	)

	writeJSON(w, http.StatusOK, generateResponse{
		Success: true,
		Prompt:  out.Text,
		Source:  out.Source,
		Warning: out.Warning,
	})
}

// decodeRequest reads exactly one JSON value from body into dst. It returns
// a zero status on success, otherwise the status and message to send.
func decodeRequest(body io.Reader, dst any) (int, string) {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return decodeFailure(err)
	}
	// A second value or trailing garbage makes the body invalid.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return decodeFailure(err)
	}
	return 0, ""
}

// decodeFailure maps a decode error (nil for a trailing value) to a response.
func decodeFailure(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, "Request body too large"
	}
	return http.StatusBadRequest, "Invalid JSON body"
}

// Health handles GET /api/health.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Service: ServiceName})
}

// Stats handles GET /api/stats and reports the usage counters.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	if a.stats == nil {
		writeJSON(w, http.StatusOK, statsResponse{Enabled: false})
		return
	}

	snap, err := a.stats.Snapshot(r.Context())
	if err != nil {
		slog.Error("usage snapshot failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "Usage counters unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{Enabled: true, Snapshot: &snap})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("json response encode failed", "error", err)
	}
}
