package book

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a book entity in the catalog.
type Book struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	PublicationYear int       `json:"publication_year" db:"publication_year"`
	AuthorID        uuid.UUID `json:"author_id" db:"author_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// BookWithAuthor is a book row joined with its author's name.
type BookWithAuthor struct {
	Book
	AuthorName string `db:"author_name"`
}

// DecadeCount is one bucket of the stats aggregation. Decade is the
// floor of the publication year to a multiple of ten (1994 -> 1990).
type DecadeCount struct {
	Decade int `json:"decade"`
	Count  int `json:"count"`
}

// StatBook is the trimmed book shown as oldest/latest in the stats.
type StatBook struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	PublicationYear int       `json:"publication_year"`
}

// Stats summarizes the catalog for the stats endpoint. OldestBook and
// LatestBook are nil while the catalog is empty.
type Stats struct {
	TotalBooks   int           `json:"total_books"`
	TotalAuthors int           `json:"total_authors"`
	OldestBook   *StatBook     `json:"oldest_book"`
	LatestBook   *StatBook     `json:"latest_book"`
	ByDecade     []DecadeCount `json:"books_by_decade"`
}
