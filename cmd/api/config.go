// cmd/api/config.go
// Configuration is read from an optional .env file, then the environment,
// then command-line flags. Each layer overrides the one before it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aoideee/bookshelf/internal/validator"
)

// loadConfig builds a serverConfig from .env, BOOKSHELF_* variables and args.
// A missing .env file is not an error.
func loadConfig(args []string) (serverConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return serverConfig{}, fmt.Errorf("loading .env: %w", err)
	}

	var settings serverConfig

	fs := flag.NewFlagSet("bookshelf", flag.ContinueOnError)
	fs.IntVar(&settings.port, "port", getEnvInt("BOOKSHELF_PORT", 4000), "Server port")
	fs.StringVar(&settings.environment, "env", getEnv("BOOKSHELF_ENV", "development"), "Environment(development|staging|production)")
	fs.Float64Var(&settings.limiter.rps, "limiter-rps", getEnvFloat("BOOKSHELF_LIMITER_RPS", 2), "Rate limiter maximum requests per second")
	fs.IntVar(&settings.limiter.burst, "limiter-burst", getEnvInt("BOOKSHELF_LIMITER_BURST", 4), "Rate limiter maximum burst")
	fs.BoolVar(&settings.limiter.enabled, "limiter-enabled", getEnvBool("BOOKSHELF_LIMITER_ENABLED", true), "Enable rate limiter")

	if err := fs.Parse(args); err != nil {
		return serverConfig{}, err
	}

	if err := validateConfig(settings); err != nil {
		return serverConfig{}, err
	}
	return settings, nil
}

// validateConfig rejects settings the server cannot start with.
func validateConfig(settings serverConfig) error {
	v := validator.New()

	v.Check(settings.port > 0 && settings.port <= 65535, "port", "must be between 1 and 65535")
	v.Check(validator.In(settings.environment, "development", "staging", "production"), "env", "must be development, staging or production")
	if settings.limiter.enabled {
		v.Check(settings.limiter.rps > 0, "limiter-rps", "must be greater than zero")
		v.Check(settings.limiter.burst > 0, "limiter-burst", "must be greater than zero")
	}

	if v.Valid() {
		return nil
	}

	keys := make([]string, 0, len(v.Errors))
	for key := range v.Errors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	problems := make([]string, 0, len(keys))
	for _, key := range keys {
		problems = append(problems, key+": "+v.Errors[key])
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if i, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return i
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}
