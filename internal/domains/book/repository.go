package book

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// Repository is the book data access contract.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id uuid.UUID) (*BookWithAuthor, error)
	List(ctx context.Context, params url.Values, limit, offset int) ([]BookWithAuthor, int, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
