package library

import (
	"time"

	"github.com/google/uuid"
)

// Library is a physical branch holding a collection of books. The
// collection is a many-to-many link; a book can sit in any number of
// libraries.
type Library struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ShelvedBook is a book row as listed inside a library's collection.
type ShelvedBook struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	PublicationYear int       `json:"publication_year" db:"publication_year"`
	AuthorName      string    `json:"author_name" db:"author_name"`
}
