package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/follow"
	"bookhub-backend/internal/shared/middleware"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/pkg/logger"
)

type FollowHandler struct {
	service follow.Service
}

func NewFollowHandler(service follow.Service) *FollowHandler {
	return &FollowHandler{service: service}
}

// Follow handles POST /api/v1/users/:id/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id", nil)
		return
	}

	status, err := h.service.Follow(c.Request.Context(), identity.UserID, followeeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "user followed", "follow", status)
}

// Unfollow handles POST /api/v1/users/:id/unfollow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id", nil)
		return
	}

	status, err := h.service.Unfollow(c.Request.Context(), identity.UserID, followeeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "user unfollowed", "follow", status)
}

// Followers handles GET /api/v1/users/:id/followers
func (h *FollowHandler) Followers(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id", nil)
		return
	}

	limit, offset := pagination(c)

	users, total, err := h.service.Followers(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "followers retrieved successfully", "followers", users, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// Following handles GET /api/v1/users/:id/following
func (h *FollowHandler) Following(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id", nil)
		return
	}

	limit, offset := pagination(c)

	users, total, err := h.service.Following(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "following retrieved successfully", "following", users, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *FollowHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, follow.ErrSelfFollow):
		response.BadRequest(c, "cannot follow yourself", nil)
	case errors.Is(err, follow.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, follow.ErrNotFollowing):
		response.BadRequest(c, "not following this user", nil)
	default:
		logger.Error("follow handler error", err)
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
