// Package main is the entry point for the bookshelf API server.
// It wires together configuration, logging, the in-memory store and the HTTP router.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/aoideee/bookshelf/internal/data"
)

// appVersion is the current version of the API, shown in logs and the healthcheck.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup via flags or environment.
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on (default 4000)
	environment string // Runtime environment: development, staging, or production
	limiter     struct {
		rps     float64 // Tokens added to each client's bucket per second
		burst   int     // Bucket capacity
		enabled bool    // Turns per-IP rate limiting on or off
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config serverConfig   // Server configuration loaded from flags and environment
	logger zerolog.Logger // Structured logger
	models data.Models    // Book store shared by every request
}

func main() {
	settings, err := loadConfig(os.Args[1:])
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := newLogger(os.Stdout, settings.environment)

	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		models: data.NewModels(),
	}

	err = appInstance.serve()
	if err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
