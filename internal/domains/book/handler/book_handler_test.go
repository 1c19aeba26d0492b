package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookhub-backend/internal/domains/book"
	"bookhub-backend/internal/shared/auth"
	"bookhub-backend/internal/shared/middleware"
	"bookhub-backend/pkg/jwt"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.BookResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*book.BookResponse), args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID) (*book.BookResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*book.BookResponse), args.Error(1)
}

func (m *mockService) List(ctx context.Context, params url.Values, limit, offset int) ([]*book.BookResponse, int, error) {
	args := m.Called(ctx, params, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*book.BookResponse), args.Int(1), args.Error(2)
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.BookResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*book.BookResponse), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id uuid.UUID) (*book.DeletedBookSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*book.DeletedBookSummary), args.Error(1)
}

func (m *mockService) Stats(ctx context.Context) (*book.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*book.Stats), args.Error(1)
}

var testJWT = jwt.NewManager("test-secret", 15, 72)

func setupRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBookHandler(svc)
	requireAuth := middleware.RequireAuth(testJWT)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(middleware.OptionalAuth(testJWT))

	books := v1.Group("/books")
	books.GET("", h.List)
	books.GET("/stats", h.Stats)
	books.GET("/:id", h.GetByID)
	books.POST("", requireAuth, middleware.RequireCapability(auth.CapabilityCreate), h.Create)
	books.PUT("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityEdit), h.Update)
	books.DELETE("/:id", requireAuth, middleware.RequireCapability(auth.CapabilityDelete), h.Delete)

	return router
}

func tokenFor(t *testing.T, role auth.Role) string {
	t.Helper()
	token, err := testJWT.GenerateAccessToken(uuid.NewString(), "tester", string(role))
	require.NoError(t, err)
	return token
}

func sampleResponse() *book.BookResponse {
	now := time.Now()
	return &book.BookResponse{
		ID:              uuid.New(),
		Title:           "The Fellowship of the Ring",
		PublicationYear: 1954,
		Author:          book.AuthorRef{ID: uuid.New(), Name: "J.R.R. Tolkien"},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestList_AnonymousAllowed(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("List", mock.Anything, mock.Anything, 20, 0).Return([]*book.BookResponse{sampleResponse()}, 1, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/books", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Contains(t, body, "books")
	assert.Contains(t, body, "available_filters")
	assert.Contains(t, body, "available_search")
	assert.Contains(t, body, "available_ordering")
	assert.EqualValues(t, 1, body["total"])
}

func TestCreate_AnonymousRejected(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/v1/books", "", gin.H{
		"title":            "New Book",
		"publication_year": 2001,
		"author_id":        uuid.NewString(),
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	svc.AssertNotCalled(t, "Create")
}

func TestCreate_MemberForbidden(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/v1/books", tokenFor(t, auth.RoleMember), gin.H{
		"title":            "New Book",
		"publication_year": 2001,
		"author_id":        uuid.NewString(),
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestCreate_LibrarianAllowed(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("Create", mock.Anything, mock.AnythingOfType("*book.CreateBookRequest")).Return(sampleResponse(), nil)

	w := doRequest(router, http.MethodPost, "/api/v1/books", tokenFor(t, auth.RoleLibrarian), gin.H{
		"title":            "The Fellowship of the Ring",
		"publication_year": 1954,
		"author_id":        uuid.NewString(),
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Contains(t, body, "book")
}

func TestDelete_LibrarianForbidden(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	w := doRequest(router, http.MethodDelete, "/api/v1/books/"+uuid.NewString(), tokenFor(t, auth.RoleLibrarian), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	svc.AssertNotCalled(t, "Delete")
}

func TestDelete_AdminAllowed(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(&book.DeletedBookSummary{ID: id, Title: "Old Book"}, nil)

	w := doRequest(router, http.MethodDelete, "/api/v1/books/"+id.String(), tokenFor(t, auth.RoleAdmin), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Contains(t, body, "book")
}

func TestCreate_ValidationErrorsInEnvelope(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("Create", mock.Anything, mock.AnythingOfType("*book.CreateBookRequest")).Return(nil, func() error {
		req := &book.CreateBookRequest{Title: "<script>alert(1)</script>", PublicationYear: 1954, AuthorID: uuid.New()}
		return req.Validate()
	}())

	w := doRequest(router, http.MethodPost, "/api/v1/books", tokenFor(t, auth.RoleAdmin), gin.H{
		"title":            "<script>alert(1)</script>",
		"publication_year": 1954,
		"author_id":        uuid.NewString(),
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])

	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok, "errors is a field map")
	assert.Contains(t, errs, "title")
}

func TestGetByID_NotFound(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, book.ErrBookNotFound)

	w := doRequest(router, http.MethodGet, "/api/v1/books/"+id.String(), "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	w := doRequest(router, http.MethodGet, "/api/v1/books/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetByID")
}

func TestCreate_DuplicateConflict(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("Create", mock.Anything, mock.AnythingOfType("*book.CreateBookRequest")).Return(nil, book.ErrDuplicateBook)

	w := doRequest(router, http.MethodPost, "/api/v1/books", tokenFor(t, auth.RoleAdmin), gin.H{
		"title":            "The Fellowship of the Ring",
		"publication_year": 1954,
		"author_id":        uuid.NewString(),
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStats_Anonymous(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("Stats", mock.Anything).Return(&book.Stats{
		TotalBooks:   3,
		TotalAuthors: 2,
		OldestBook:   &book.StatBook{ID: uuid.New(), Title: "The Fellowship of the Ring", PublicationYear: 1954},
		LatestBook:   &book.StatBook{ID: uuid.New(), Title: "Harry Potter", PublicationYear: 1997},
		ByDecade:     []book.DecadeCount{{Decade: 1950, Count: 1}, {Decade: 1970, Count: 1}, {Decade: 1990, Count: 1}},
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/books/stats", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	stats, ok := body["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, stats["total_books"])
	assert.EqualValues(t, 2, stats["total_authors"])
	assert.Contains(t, stats, "oldest_book")
	assert.Contains(t, stats, "books_by_decade")
}
