package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/book"
	"bookhub-backend/pkg/cache"
	"bookhub-backend/pkg/logger"
)

const (
	statsCacheKey = "books:stats"
	statsCacheTTL = 60 * time.Second
)

type bookService struct {
	repo  book.Repository
	cache cache.Cache
}

// NewBookService creates the book service.
func NewBookService(repo book.Repository, cache cache.Cache) book.Service {
	return &bookService{repo: repo, cache: cache}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.BookResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &book.Book{
		ID:              uuid.New(),
		Title:           req.Title,
		PublicationYear: req.PublicationYear,
		AuthorID:        req.AuthorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)

	logger.Info("book created", map[string]interface{}{
		"book_id": b.ID.String(),
		"title":   b.Title,
	})

	// Reload to pick up the author name for the response.
	created, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("reload created book: %w", err)
	}

	return created.ToResponse(), nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.BookResponse, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return b.ToResponse(), nil
}

func (s *bookService) List(ctx context.Context, params url.Values, limit, offset int) ([]*book.BookResponse, int, error) {
	books, total, err := s.repo.List(ctx, params, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*book.BookResponse, len(books))
	for i := range books {
		responses[i] = books[i].ToResponse()
	}

	return responses, total, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.BookResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b := existing.Book
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.PublicationYear != nil {
		b.PublicationYear = *req.PublicationYear
	}
	if req.AuthorID != nil {
		b.AuthorID = *req.AuthorID
	}
	b.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &b); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)

	logger.Info("book updated", map[string]interface{}{
		"book_id": b.ID.String(),
	})

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload updated book: %w", err)
	}

	return updated.ToResponse(), nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) (*book.DeletedBookSummary, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)

	logger.Info("book deleted", map[string]interface{}{
		"book_id": b.ID.String(),
	})

	return &book.DeletedBookSummary{ID: b.ID, Title: b.Title}, nil
}

// Stats serves the aggregation from Redis when fresh, recomputing at
// most once per minute under normal traffic.
func (s *bookService) Stats(ctx context.Context) (*book.Stats, error) {
	var cached book.Stats
	if found, err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		logger.Warn("failed to cache book stats", map[string]interface{}{"error": err.Error()})
	}

	return stats, nil
}

func (s *bookService) invalidateStats(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		logger.Warn("failed to invalidate stats cache", map[string]interface{}{"error": err.Error()})
	}
}
