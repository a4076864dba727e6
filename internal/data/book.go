// Package data provides the book record types and the in-memory store
// that holds them for the lifetime of the process.
package data

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/aoideee/bookshelf/internal/validator"
)

// Book represents a single record on the shelf.
// The JSON names are the wire contract shared with existing clients.
type Book struct {
	ID         string    `json:"id"`         // Generated on insert, never changes
	Name       string    `json:"name"`       // Title of the book, required
	Year       any       `json:"year"`       // Publication year, stored exactly as sent
	Author     string    `json:"author"`     // Author's name
	Summary    string    `json:"summary"`    // Short synopsis
	Publisher  string    `json:"publisher"`  // Name of the publishing company
	PageCount  int       `json:"pageCount"`  // Total number of pages
	ReadPage   int       `json:"readPage"`   // Pages read so far, never above PageCount
	Finished   bool      `json:"finished"`   // ReadPage == PageCount at creation time
	Reading    bool      `json:"reading"`    // Whether the book is currently being read
	InsertedAt time.Time `json:"insertedAt"` // Timestamp when the record was created
	UpdatedAt  time.Time `json:"updatedAt"`  // Set on insert only
}

// BookSummary is the reduced projection returned by the list endpoint.
type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// ListEntry projects b onto the fields exposed in list responses.
func (b *Book) ListEntry() BookSummary {
	return BookSummary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// BookInput holds the fields a client supplies when creating or replacing a book.
// The same payload shape is used for POST and PUT.
type BookInput struct {
	Name      string `json:"name"`
	Year      any    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`
}

// ValidateBookInput checks the two rules every create and update must pass.
// It returns ErrMissingName or ErrPageOverflow for the first rule broken, in
// that order, and nil when the input is acceptable.
func ValidateBookInput(input *BookInput) error {
	v := validator.New()

	err := v.Merge(validation.ValidateStruct(input,
		validation.Field(&input.Name, validation.Required),
		validation.Field(&input.ReadPage, validation.By(func(any) error {
			if input.ReadPage > input.PageCount {
				return validation.NewError("validation_read_page_overflow", "must not be greater than pageCount")
			}
			return nil
		})),
	))
	if err != nil {
		return err
	}

	switch v.FirstFailed("name", "readPage") {
	case "name":
		return ErrMissingName
	case "readPage":
		return ErrPageOverflow
	}
	return nil
}

// newBook builds a fresh record from input. The caller assigns ID and timestamps.
func newBook(input BookInput) *Book {
	return &Book{
		Name:      input.Name,
		Year:      input.Year,
		Author:    input.Author,
		Summary:   input.Summary,
		Publisher: input.Publisher,
		PageCount: input.PageCount,
		ReadPage:  input.ReadPage,
		Finished:  input.PageCount == input.ReadPage,
		Reading:   input.Reading,
	}
}

// apply replaces every client-owned field of b with the values from input.
// Finished, InsertedAt and UpdatedAt are left as they were at creation.
func (b *Book) apply(input BookInput) {
	b.Name = input.Name
	b.Year = input.Year
	b.Author = input.Author
	b.Summary = input.Summary
	b.Publisher = input.Publisher
	b.PageCount = input.PageCount
	b.ReadPage = input.ReadPage
	b.Reading = input.Reading
}
