package notification

import (
	"time"

	"github.com/google/uuid"
)

// NotificationResponse is the API representation of a notification.
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actor_id"`
	Verb      string    `json:"verb"`
	PostID    uuid.UUID `json:"post_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) ToResponse() *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		ActorID:   n.ActorID,
		Verb:      n.Verb,
		PostID:    n.PostID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
