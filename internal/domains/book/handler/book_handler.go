package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/book"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/pkg/logger"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", gin.H{"body": err.Error()})
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "book created successfully", "book", resp)
}

// GetByID handles GET /api/v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id", nil)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "book retrieved successfully", "book", resp)
}

// List handles GET /api/v1/books
//
// Filters, search and ordering come from the query string; unknown or
// malformed parameters are ignored. The response advertises the
// supported parameters so clients can discover them.
func (h *BookHandler) List(c *gin.Context) {
	limit, offset := pagination(c)

	books, total, err := h.service.List(c.Request.Context(), c.Request.URL.Query(), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "books retrieved successfully", "books", books, gin.H{
		"total":              total,
		"limit":              limit,
		"offset":             offset,
		"available_filters":  book.ListQuery.AvailableFilters(),
		"available_search":   book.ListQuery.AvailableSearch(),
		"available_ordering": book.ListQuery.AvailableOrdering(),
	})
}

// Update handles PUT /api/v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id", nil)
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", gin.H{"body": err.Error()})
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "book updated successfully", "book", resp)
}

// Delete handles DELETE /api/v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id", nil)
		return
	}

	summary, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "book deleted successfully", "book", summary)
}

// Stats handles GET /api/v1/books/stats
func (h *BookHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "book stats retrieved successfully", "stats", stats)
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, "validation failed", verrs)
		return
	}

	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, book.ErrDuplicateBook):
		response.Conflict(c, "book already exists for this author")
	case errors.Is(err, book.ErrAuthorNotFound):
		response.BadRequest(c, "validation failed", gin.H{"author_id": "author does not exist"})
	default:
		logger.Error("book handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
