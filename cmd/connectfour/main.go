// Package main is the entry point for connectfour.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/connectfour/internal/game"
	"github.com/samdwyer/connectfour/internal/logger"
	"github.com/samdwyer/connectfour/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg := game.ConfigFromEnv()

	closeLog, err := logger.Init(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv(cfg)

		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
			cfg.Telemetry = false
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb using the configured key.
func setupOTelEnv(cfg game.Config) {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded variable reference, so the header
	// is built here instead.
	if cfg.APIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.APIKey, cfg.Dataset))
	}
}
