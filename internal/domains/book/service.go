package book

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// Service is the book business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateBookRequest) (*BookResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookResponse, error)
	List(ctx context.Context, params url.Values, limit, offset int) ([]*BookResponse, int, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*BookResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*DeletedBookSummary, error)
	Stats(ctx context.Context) (*Stats, error)
}
