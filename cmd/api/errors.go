// cmd/api/errors.go
// This file contains all error-response helpers for the application.
// Keeping error helpers in a dedicated file makes them easy to find and extend.
package main

import (
	"errors"
	"net/http"

	"github.com/aoideee/bookshelf/internal/data"
)

// Verbs used to build the Indonesian validation messages.
const (
	actionCreate = "menambahkan"
	actionUpdate = "memperbarui"
)

// logError logs an internal error at ERROR level with the request method and URL for context.
func (app *applicationDependencies) logError(r *http.Request, err error) {
	app.logger.Error().
		Err(err).
		Str("request_method", r.Method).
		Str("request_url", r.URL.String()).
		Msg("request failed")
}

// errorResponse sends a "fail" envelope with the given status code and message.
// It is the low-level building block used by all the specific error helpers below.
func (app *applicationDependencies) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	env := envelope{"status": "fail", "message": message}
	err := app.writeJSON(w, status, env, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs a 500-level error and sends a generic message to the client.
// Internal error details are never exposed to the client.
func (app *applicationDependencies) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

// notFoundResponse sends a 404 Not Found error for unknown routes.
func (app *applicationDependencies) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

// methodNotAllowedResponse sends a 405 Method Not Allowed error.
func (app *applicationDependencies) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := "the " + r.Method + " method is not supported for this resource"
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

// badRequestResponse sends a 400 Bad Request error with the error message from the caller.
func (app *applicationDependencies) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// failedValidationResponse answers a BookInput that broke one of the book rules.
// action is the verb of the operation that was attempted.
func (app *applicationDependencies) failedValidationResponse(w http.ResponseWriter, r *http.Request, action string, err error) {
	switch {
	case errors.Is(err, data.ErrMissingName):
		app.errorResponse(w, r, http.StatusBadRequest, "Gagal "+action+" buku. Mohon isi nama buku")
	case errors.Is(err, data.ErrPageOverflow):
		app.errorResponse(w, r, http.StatusBadRequest, "Gagal "+action+" buku. readPage tidak boleh lebih besar dari pageCount")
	default:
		app.serverErrorResponse(w, r, err)
	}
}

// rateLimitExceededResponse sends a 429 Too Many Requests error.
func (app *applicationDependencies) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}
