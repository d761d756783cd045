// Package main is the entry point for the PromptPilot API server.
// It loads configuration, wires the prompt generator, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promptpilot/internal/ai"
	"promptpilot/internal/config"
	"promptpilot/internal/handlers"
	"promptpilot/internal/prompt"
	"promptpilot/internal/router"
	"promptpilot/internal/usage"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: text in development, JSON everywhere else.
	slog.SetDefault(newLogger(cfg.IsDev()))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"allowed_origins", cfg.AllowedOrigins,
	)

	// Initialize the AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, cfg.ProviderConfigs())
	if aiRegistry.HasProvider(cfg.AIProvider) {
		slog.Info("ai providers initialized",
			"active", aiRegistry.ActiveName(),
			"available", aiRegistry.Available(),
			"timeout", cfg.AITimeout.String(),
		)
	} else {
		slog.Warn("active ai provider has no api key, all prompts will use templates",
			"active", aiRegistry.ActiveName(),
		)
	}

	// Usage counters are optional. The interfaces stay nil (not a typed nil
	// pointer) when Valkey is not configured.
	var (
		recorder prompt.UsageRecorder
		stats    handlers.StatsReader
	)
	if cfg.UsageEnabled() {
		valkeyClient, err := usage.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		counter := usage.NewCounter(valkeyClient)
		recorder = counter
		stats = counter
	} else {
		slog.Warn("valkey not configured, usage counters disabled")
	}

	composer := prompt.NewComposer(prompt.DefaultTables())
	generator := prompt.NewGenerator(composer, ai.NewClient(aiRegistry), recorder)
	api := handlers.NewAPI(generator, stats)

	// Set up the Chi router with all middleware and routes.
	r := router.New(api, cfg.AllowedOrigins)

	// WriteTimeout must outlast the provider timeout so the fallback
	// response can still be written after a provider times out.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.AITimeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// In-flight generations may be waiting on a provider for the full timeout.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.AITimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// newLogger returns a debug-level text logger for development and an
// info-level JSON logger otherwise.
func newLogger(dev bool) *slog.Logger {
	if dev {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
