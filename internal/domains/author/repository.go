package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the author data access contract.
type Repository interface {
	Create(ctx context.Context, a *Author) error
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	GetBooks(ctx context.Context, id uuid.UUID) ([]BookBrief, error)
	List(ctx context.Context, limit, offset int) ([]AuthorWithCount, int, error)
	Update(ctx context.Context, a *Author) error

	// DeleteWithBooks removes the author and all of its books in one
	// transaction, returning the number of books deleted.
	DeleteWithBooks(ctx context.Context, id uuid.UUID) (int, error)
}
