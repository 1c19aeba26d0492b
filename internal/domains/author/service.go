package author

import (
	"context"

	"github.com/google/uuid"
)

// Service is the author business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateAuthorRequest) (*AuthorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorResponse, error)
	List(ctx context.Context, limit, offset int) ([]AuthorListItem, int, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*AuthorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*DeletedAuthorSummary, error)
}
