package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is the persisted author entity. Books reference it through
// author_id; deleting an author cascades to its books.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AuthorWithCount is a list-view row carrying the aggregated book count.
type AuthorWithCount struct {
	Author
	BookCount int `db:"book_count"`
}

// BookBrief is the read-only embedded form of a book inside an author
// response. Books are never written through the author resource.
type BookBrief struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	PublicationYear int       `json:"publication_year"`
}
