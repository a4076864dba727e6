// internal/data/models.go
package data

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrRecordNotFound is returned when no book matches the requested id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrMissingName is returned when a book payload has no name.
	ErrMissingName = errors.New("book name must be provided")

	// ErrPageOverflow is returned when readPage is greater than pageCount.
	ErrPageOverflow = errors.New("readPage must not be greater than pageCount")

	// ErrInsertFailed is returned when a freshly appended book cannot be found again.
	ErrInsertFailed = errors.New("book could not be inserted")
)

// Models is a top-level container that groups all model types together.
// It is passed around the application via applicationDependencies so every
// handler works against the same store.
type Models struct {
	Books *BookModel // Holds every book record of the process
}

// NewModels constructs a Models value with an empty book store.
// Call this once during application startup (or once per test).
func NewModels() Models {
	return Models{
		Books: NewBookModel(time.Now, uuid.NewString),
	}
}

// Filters holds the optional list filters extracted from the query string.
// A nil pointer means the filter was not requested.
type Filters struct {
	Name     string // Case-insensitive substring of the book name
	Reading  *bool  // Match on the reading flag
	Finished *bool  // Match on the finished flag
}

// match applies the filters conjunctively: name, then reading, then finished.
func (f Filters) match(b *Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}

// BookModel is the in-memory record store. Books are kept in insertion order
// and located by linear scan; a single RWMutex serializes all writers.
type BookModel struct {
	mu    sync.RWMutex
	books []*Book
	now   func() time.Time
	newID func() string
}

// NewBookModel returns an empty store that stamps records with now and
// identifies them with newID.
func NewBookModel(now func() time.Time, newID func() string) *BookModel {
	return &BookModel{
		books: []*Book{},
		now:   now,
		newID: newID,
	}
}

// Insert adds a new book built from input and returns a copy of the stored record.
// The generated id, insertedAt/updatedAt and finished values are set here.
func (m *BookModel) Insert(input BookInput) (*Book, error) {
	book := newBook(input)
	book.ID = m.newID()
	book.InsertedAt = m.now().UTC()
	book.UpdatedAt = book.InsertedAt

	m.mu.Lock()
	defer m.mu.Unlock()

	m.books = append(m.books, book)

	// Confirm the record is reachable by its id before reporting success.
	if m.indexOf(book.ID) < 0 {
		return nil, ErrInsertFailed
	}

	stored := *book
	return &stored, nil
}

// Get retrieves a copy of the first book whose id matches.
// Returns ErrRecordNotFound if no such book exists.
func (m *BookModel) Get(id string) (*Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrRecordNotFound
	}

	book := *m.books[i]
	return &book, nil
}

// GetAll returns copies of every book matching filters, in insertion order.
// The result is never nil, so an empty shelf encodes as [].
func (m *BookModel) GetAll(filters Filters) []*Book {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := []*Book{}
	for _, b := range m.books {
		if !filters.match(b) {
			continue
		}
		book := *b
		books = append(books, &book)
	}
	return books
}

// Update replaces the client-owned fields of the book with the given id.
// Returns ErrRecordNotFound, leaving the store untouched, if it does not exist.
func (m *BookModel) Update(id string, input BookInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrRecordNotFound
	}

	m.books[i].apply(input)
	return nil
}

// Delete removes the book with the given id.
// Returns ErrRecordNotFound if no matching record exists.
func (m *BookModel) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrRecordNotFound
	}

	m.books = append(m.books[:i], m.books[i+1:]...)
	return nil
}

// Len reports how many books are currently stored.
func (m *BookModel) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.books)
}

// indexOf returns the position of the first book with id, or -1.
// Callers must hold m.mu.
func (m *BookModel) indexOf(id string) int {
	for i, b := range m.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
