package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/library"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/pkg/logger"
)

type LibraryHandler struct {
	service library.Service
}

func NewLibraryHandler(service library.Service) *LibraryHandler {
	return &LibraryHandler{service: service}
}

// Create handles POST /api/v1/libraries
func (h *LibraryHandler) Create(c *gin.Context) {
	var req library.CreateLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", gin.H{"body": err.Error()})
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "library created successfully", "library", resp)
}

// GetByID handles GET /api/v1/libraries/:id
func (h *LibraryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid library id", nil)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "library retrieved successfully", "library", resp)
}

// List handles GET /api/v1/libraries
func (h *LibraryHandler) List(c *gin.Context) {
	limit, offset := pagination(c)

	libraries, total, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "libraries retrieved successfully", "libraries", libraries, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// Update handles PUT /api/v1/libraries/:id
func (h *LibraryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid library id", nil)
		return
	}

	var req library.UpdateLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", gin.H{"body": err.Error()})
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "library updated successfully", "library", resp)
}

// Delete handles DELETE /api/v1/libraries/:id
func (h *LibraryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid library id", nil)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "library deleted successfully", "library", gin.H{"id": id})
}

// AddBook handles POST /api/v1/libraries/:id/books
func (h *LibraryHandler) AddBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid library id", nil)
		return
	}

	var req library.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", gin.H{"body": err.Error()})
		return
	}

	resp, err := h.service.AddBook(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "book added to library", "library", resp)
}

// RemoveBook handles DELETE /api/v1/libraries/:id/books/:bookId
func (h *LibraryHandler) RemoveBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid library id", nil)
		return
	}

	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		response.BadRequest(c, "invalid book id", nil)
		return
	}

	resp, err := h.service.RemoveBook(c.Request.Context(), id, bookID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "book removed from library", "library", resp)
}

func (h *LibraryHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, "validation failed", verrs)
		return
	}

	switch {
	case errors.Is(err, library.ErrLibraryNotFound):
		response.NotFound(c, "library not found")
	case errors.Is(err, library.ErrBookNotFound):
		response.BadRequest(c, "validation failed", gin.H{"book_id": "book does not exist"})
	case errors.Is(err, library.ErrBookNotInLibrary):
		response.NotFound(c, "book is not in this library")
	default:
		logger.Error("library handler error", err)
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
