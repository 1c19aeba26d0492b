package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Notification is a message delivered to a user about activity on
// their content. Rows are written by the background worker, not by the
// request path.
type Notification struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RecipientID uuid.UUID `json:"recipient_id" db:"recipient_id"`
	ActorID     uuid.UUID `json:"actor_id" db:"actor_id"`
	Verb        string    `json:"verb" db:"verb"`
	PostID      uuid.UUID `json:"post_id" db:"post_id"`
	Message     string    `json:"message" db:"message"`
	IsRead      bool      `json:"is_read" db:"is_read"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

const VerbLiked = "liked"

// DeliverPayload is the task payload enqueued by the request path and
// consumed by the worker.
type DeliverPayload struct {
	RecipientID   uuid.UUID `json:"recipient_id"`
	ActorID       uuid.UUID `json:"actor_id"`
	ActorUsername string    `json:"actor_username"`
	Verb          string    `json:"verb"`
	PostID        uuid.UUID `json:"post_id"`
	PostTitle     string    `json:"post_title"`
}

// Enqueuer hands a delivery off to the background queue. Implemented
// by the asynq client in internal/infrastructure/queue.
type Enqueuer interface {
	EnqueueDeliver(ctx context.Context, payload DeliverPayload) error
}
