// Package main is the entry point for roomcrawl.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/roomcrawl/internal/game"
	"github.com/samdwyer/roomcrawl/internal/logger"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
	"github.com/samdwyer/roomcrawl/internal/ui"
)

const defaultLogFile = "roomcrawl.log"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// The terminal belongs to tcell, so logs go to a file
	logCfg := logger.ConfigFromEnv()
	if logCfg.Output == "" {
		logCfg.Output = defaultLogFile
	}
	closer, err := logger.Init(logCfg)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closer.Close()

	setupOTelEnv()

	ctx := context.Background()
	cfg := game.LoadConfig()
	cfg.ResolveSeed()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, cfg.Attributes()...)
		if err != nil {
			logger.Log.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	if err := run(ctx, cfg); err != nil {
		logger.Log.WithError(err).Error("game exited with error")
		fmt.Fprintf(os.Stderr, "roomcrawl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg game.Config) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}

	g, err := game.New(ctx, cfg, screen)
	if err != nil {
		screen.Close()
		return err
	}
	defer g.Close()

	return g.Run(ctx)
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured and no endpoint was set explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ROOMCRAWL_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_ROOMCRAWL_DATASET")
	if dataset == "" {
		dataset = "roomcrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
