package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookhub-backend/internal/domains/author"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, a *author.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*author.Author), args.Error(1)
}

func (m *mockRepository) GetBooks(ctx context.Context, id uuid.UUID) ([]author.BookBrief, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]author.BookBrief), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, limit, offset int) ([]author.AuthorWithCount, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]author.AuthorWithCount), args.Int(1), args.Error(2)
}

func (m *mockRepository) Update(ctx context.Context, a *author.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockRepository) DeleteWithBooks(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func existingAuthor(id uuid.UUID) *author.Author {
	now := time.Now()
	return &author.Author{
		ID:        id,
		Name:      "J.R.R. Tolkien",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreate_Valid(t *testing.T) {
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*author.Author")).Return(nil)

	resp, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: "  Ursula K. Le Guin  "})

	require.NoError(t, err)
	assert.Equal(t, "Ursula K. Le Guin", resp.Name, "name is trimmed before persisting")
	assert.NotEqual(t, uuid.Nil, resp.ID)
	repo.AssertExpectations(t)
}

func TestCreate_InvalidName(t *testing.T) {
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: "42"})

	assert.Error(t, err, "a name without letters is rejected")
	repo.AssertNotCalled(t, "Create")
}

func TestGetByID_IncludesBooks(t *testing.T) {
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	id := uuid.New()
	books := []author.BookBrief{
		{ID: uuid.New(), Title: "The Return of the King", PublicationYear: 1955},
		{ID: uuid.New(), Title: "The Hobbit", PublicationYear: 1937},
	}

	repo.On("GetByID", mock.Anything, id).Return(existingAuthor(id), nil)
	repo.On("GetBooks", mock.Anything, id).Return(books, nil)

	resp, err := svc.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Len(t, resp.Books, 2)
	repo.AssertExpectations(t)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, author.ErrAuthorNotFound)

	_, err := svc.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestDelete_CascadesToBooks(t *testing.T) {
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(existingAuthor(id), nil)
	repo.On("DeleteWithBooks", mock.Anything, id).Return(3, nil)

	summary, err := svc.Delete(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, summary.ID)
	assert.Equal(t, 3, summary.BooksDeleted, "summary reports the cascaded books")
	repo.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, author.ErrAuthorNotFound)

	_, err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	repo.AssertNotCalled(t, "DeleteWithBooks")
}

func TestUpdate_PartialName(t *testing.T) {
	repo := new(mockRepository)
	svc := NewAuthorService(repo)

	id := uuid.New()
	newName := "John Ronald Reuel Tolkien"

	repo.On("GetByID", mock.Anything, id).Return(existingAuthor(id), nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a *author.Author) bool {
		return a.Name == newName
	})).Return(nil)
	repo.On("GetBooks", mock.Anything, id).Return([]author.BookBrief{}, nil)

	resp, err := svc.Update(context.Background(), id, &author.UpdateAuthorRequest{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, newName, resp.Name)
	repo.AssertExpectations(t)
}
