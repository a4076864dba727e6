// cmd/api/server.go
// This file contains the serve() method which starts the HTTP server and
// handles graceful shutdown when an OS signal is received.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// serve builds the HTTP server, starts it, then blocks until it receives a
// SIGINT or SIGTERM signal. In-flight requests are given 20 seconds to
// complete before the server is forcefully stopped.
func (app *applicationDependencies) serve() error {
	// Stops the rate limiter's eviction loop once the server has returned.
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.port),
		Handler:      app.routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     log.New(app.logger, "", 0),
	}

	shutdownErr := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		s := <-quit
		app.logger.Info().Str("signal", s.String()).Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		shutdownErr <- apiServer.Shutdown(shutdownCtx)
	}()

	app.logger.Info().
		Str("address", apiServer.Addr).
		Str("environment", app.config.environment).
		Msg("starting server")

	// ErrServerClosed means Shutdown was called, which is the normal exit path.
	err := apiServer.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownErr
	if err != nil {
		return err
	}

	app.logger.Info().Str("address", apiServer.Addr).Msg("server stopped")
	return nil
}
