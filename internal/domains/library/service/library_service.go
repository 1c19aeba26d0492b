package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/library"
	"bookhub-backend/pkg/logger"
)

type libraryService struct {
	repo library.Repository
}

// NewLibraryService creates the library service.
func NewLibraryService(repo library.Repository) library.Service {
	return &libraryService{repo: repo}
}

func (s *libraryService) Create(ctx context.Context, req *library.CreateLibraryRequest) (*library.LibraryResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	l := &library.Library{
		ID:        uuid.New(),
		Name:      req.Name,
		Address:   req.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create library: %w", err)
	}

	logger.Info("library created", map[string]interface{}{
		"library_id": l.ID.String(),
		"name":       l.Name,
	})

	return l.ToResponse(nil), nil
}

func (s *libraryService) GetByID(ctx context.Context, id uuid.UUID) (*library.LibraryResponse, error) {
	return s.loadWithBooks(ctx, id)
}

func (s *libraryService) List(ctx context.Context, limit, offset int) ([]library.LibraryListItem, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *libraryService) Update(ctx context.Context, id uuid.UUID, req *library.UpdateLibraryRequest) (*library.LibraryResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Address != nil {
		l.Address = *req.Address
	}
	l.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("update library: %w", err)
	}

	return s.loadWithBooks(ctx, id)
}

func (s *libraryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("library deleted", map[string]interface{}{
		"library_id": id.String(),
	})

	return nil
}

func (s *libraryService) AddBook(ctx context.Context, libraryID uuid.UUID, req *library.AddBookRequest) (*library.LibraryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, libraryID); err != nil {
		return nil, err
	}

	if err := s.repo.AddBook(ctx, libraryID, req.BookID); err != nil {
		return nil, err
	}

	logger.Info("book shelved", map[string]interface{}{
		"library_id": libraryID.String(),
		"book_id":    req.BookID.String(),
	})

	return s.loadWithBooks(ctx, libraryID)
}

func (s *libraryService) RemoveBook(ctx context.Context, libraryID, bookID uuid.UUID) (*library.LibraryResponse, error) {
	if _, err := s.repo.GetByID(ctx, libraryID); err != nil {
		return nil, err
	}

	if err := s.repo.RemoveBook(ctx, libraryID, bookID); err != nil {
		return nil, err
	}

	logger.Info("book unshelved", map[string]interface{}{
		"library_id": libraryID.String(),
		"book_id":    bookID.String(),
	})

	return s.loadWithBooks(ctx, libraryID)
}

func (s *libraryService) loadWithBooks(ctx context.Context, id uuid.UUID) (*library.LibraryResponse, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.GetBooks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load library books: %w", err)
	}

	return l.ToResponse(books), nil
}
