package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/notification"
	"bookhub-backend/internal/shared/middleware"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/pkg/logger"
)

type NotificationHandler struct {
	service notification.Service
}

func NewNotificationHandler(service notification.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	limit, offset := pagination(c)

	notifications, total, err := h.service.List(c.Request.Context(), identity.UserID, limit, offset)
	if err != nil {
		logger.Error("notification handler error", err)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "notifications retrieved successfully", "notifications", notifications, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// MarkRead handles POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid notification id", nil)
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id, identity.UserID); err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			response.NotFound(c, "notification not found")
			return
		}
		logger.Error("notification handler error", err)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, "notification marked as read", "notification", gin.H{"id": id, "is_read": true})
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
