package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/author"
	"bookhub-backend/pkg/logger"
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService creates the author service.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.AuthorResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	a := &author.Author{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	logger.Info("author created", map[string]interface{}{
		"author_id": a.ID.String(),
		"name":      a.Name,
	})

	return a.ToResponse(nil), nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.AuthorResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.GetBooks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load author books: %w", err)
	}

	return a.ToResponse(books), nil
}

func (s *authorService) List(ctx context.Context, limit, offset int) ([]author.AuthorListItem, int, error) {
	authors, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	items := make([]author.AuthorListItem, len(authors))
	for i, a := range authors {
		items[i] = author.AuthorListItem{
			ID:        a.ID,
			Name:      a.Name,
			BookCount: a.BookCount,
		}
	}

	return items, total, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.AuthorResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}

	books, err := s.repo.GetBooks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load author books: %w", err)
	}

	logger.Info("author updated", map[string]interface{}{
		"author_id": a.ID.String(),
	})

	return a.ToResponse(books), nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (*author.DeletedAuthorSummary, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	booksDeleted, err := s.repo.DeleteWithBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("author deleted", map[string]interface{}{
		"author_id":     a.ID.String(),
		"books_deleted": booksDeleted,
	})

	return &author.DeletedAuthorSummary{
		ID:           a.ID,
		Name:         a.Name,
		BooksDeleted: booksDeleted,
	}, nil
}
