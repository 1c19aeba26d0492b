package library

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the library data access contract.
type Repository interface {
	Create(ctx context.Context, l *Library) error
	GetByID(ctx context.Context, id uuid.UUID) (*Library, error)
	GetBooks(ctx context.Context, id uuid.UUID) ([]ShelvedBook, error)
	List(ctx context.Context, limit, offset int) ([]LibraryListItem, int, error)
	Update(ctx context.Context, l *Library) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AddBook links a book into the collection. Adding a book that is
	// already shelved is a no-op.
	AddBook(ctx context.Context, libraryID, bookID uuid.UUID) error
	RemoveBook(ctx context.Context, libraryID, bookID uuid.UUID) error
}
