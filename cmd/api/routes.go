// cmd/api/routes.go
package main

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the middleware chain.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → logRequests → rateLimit → router
//
// Current endpoints:
//
//	POST   /books            – add a book to the shelf
//	GET    /books            – list books (name, reading, finished filters)
//	GET    /books/:bookId    – retrieve a single book by id
//	PUT    /books/:bookId    – replace a book's details
//	DELETE /books/:bookId    – delete a book by id
//	GET    /healthcheck      – report environment, version and book count
//
// Background work started here (rate limiter eviction) stops when ctx is done.
func (app *applicationDependencies) routes(ctx context.Context) http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthcheckHandler)

	router.HandlerFunc(http.MethodPost, "/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/books/:bookId", app.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/books/:bookId", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:bookId", app.deleteBookHandler)

	return app.recoverPanic(app.logRequests(app.rateLimit(ctx, router)))
}
