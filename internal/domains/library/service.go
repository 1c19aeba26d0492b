package library

import (
	"context"

	"github.com/google/uuid"
)

// Service is the library business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateLibraryRequest) (*LibraryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*LibraryResponse, error)
	List(ctx context.Context, limit, offset int) ([]LibraryListItem, int, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateLibraryRequest) (*LibraryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddBook(ctx context.Context, libraryID uuid.UUID, req *AddBookRequest) (*LibraryResponse, error)
	RemoveBook(ctx context.Context, libraryID, bookID uuid.UUID) (*LibraryResponse, error)
}
