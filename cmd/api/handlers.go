// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and the book store.
package main

import (
	"errors"
	"net/http"

	"github.com/aoideee/bookshelf/internal/data"
)

// createBookHandler handles POST /books.
// It validates the payload, stores a new record and responds 201 with its id.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var input data.BookInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err = data.ValidateBookInput(&input); err != nil {
		app.failedValidationResponse(w, r, actionCreate, err)
		return
	}

	book, err := app.models.Books.Insert(input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInsertFailed):
			app.logError(r, err)
			app.errorResponse(w, r, http.StatusInternalServerError, "Buku gagal ditambahkan")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, success("Buku berhasil ditambahkan", envelope{"bookId": book.ID}), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /books.
// Optional name, reading and finished query parameters narrow the result;
// each surviving book is reduced to its id, name and publisher.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := data.Filters{
		Name:     app.readString(qs, "name", ""),
		Reading:  app.readBool(qs, "reading"),
		Finished: app.readBool(qs, "finished"),
	}

	books := app.models.Books.GetAll(filters)

	summaries := make([]data.BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, b.ListEntry())
	}

	err := app.writeJSON(w, http.StatusOK, success("", envelope{"books": summaries}), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /books/:bookId.
// Responds with the full record, or 404 if no book with that id exists.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	book, err := app.models.Books.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, "Buku tidak ditemukan")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, success("", envelope{"book": book}), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PUT /books/:bookId.
// The payload is validated before the lookup, so an invalid body is reported
// even for an unknown id. All client-owned fields are replaced.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	var input data.BookInput
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err = data.ValidateBookInput(&input); err != nil {
		app.failedValidationResponse(w, r, actionUpdate, err)
		return
	}

	err = app.models.Books.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, "Gagal memperbarui buku. Id tidak ditemukan")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, success("Buku berhasil diperbarui", nil), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /books/:bookId.
// Responds 404 if no book with that id exists.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	err := app.models.Books.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, "Buku gagal dihapus. Id tidak ditemukan")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, success("Buku berhasil dihapus", nil), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// healthcheckHandler handles GET /healthcheck with the running environment,
// version and the number of books currently held.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	env := success("", envelope{
		"environment": app.config.environment,
		"version":     appVersion,
		"books":       app.models.Books.Len(),
	})

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
