package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/post"
	"bookhub-backend/internal/shared/middleware"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/pkg/logger"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", gin.H{"body": err.Error()})
		return
	}

	resp, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "post created successfully", "post", resp)
}

// GetByID handles GET /api/v1/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id", nil)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "post retrieved successfully", "post", resp)
}

// List handles GET /api/v1/posts
func (h *PostHandler) List(c *gin.Context) {
	limit, offset := pagination(c)

	posts, total, err := h.service.List(c.Request.Context(), c.Request.URL.Query(), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "posts retrieved successfully", "posts", posts, gin.H{
		"total":              total,
		"limit":              limit,
		"offset":             offset,
		"available_filters":  post.ListQuery.AvailableFilters(),
		"available_search":   post.ListQuery.AvailableSearch(),
		"available_ordering": post.ListQuery.AvailableOrdering(),
	})
}

// Update handles PUT /api/v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id", nil)
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", gin.H{"body": err.Error()})
		return
	}

	resp, err := h.service.Update(c.Request.Context(), identity, id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "post updated successfully", "post", resp)
}

// Delete handles DELETE /api/v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id", nil)
		return
	}

	summary, err := h.service.Delete(c.Request.Context(), identity, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "post deleted successfully", "post", summary)
}

// Like handles POST /api/v1/posts/:id/like
func (h *PostHandler) Like(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id", nil)
		return
	}

	resp, err := h.service.Like(c.Request.Context(), identity, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "post liked", "post", resp)
}

// Unlike handles POST /api/v1/posts/:id/unlike
func (h *PostHandler) Unlike(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id", nil)
		return
	}

	resp, err := h.service.Unlike(c.Request.Context(), identity, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "post unliked", "post", resp)
}

func (h *PostHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, "validation failed", verrs)
		return
	}

	switch {
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, post.ErrNotOwner):
		response.Forbidden(c, "only the author can modify this post")
	case errors.Is(err, post.ErrAlreadyLiked):
		response.BadRequest(c, "post already liked", nil)
	case errors.Is(err, post.ErrNotLiked):
		response.BadRequest(c, "post is not liked", nil)
	default:
		logger.Error("post handler error", err)
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
