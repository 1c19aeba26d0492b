package notification

import (
	"context"

	"github.com/google/uuid"
)

// Service is the notification business logic contract. Deliver and
// CleanupOld run inside the worker; the rest serve the API.
type Service interface {
	Deliver(ctx context.Context, payload DeliverPayload) error
	List(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*NotificationResponse, int, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
	CleanupOld(ctx context.Context, retentionDays int) (int, error)
}
