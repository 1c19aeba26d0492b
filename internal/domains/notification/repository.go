package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the notification data access contract.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]Notification, int, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error

	// DeleteOlderThan removes read notifications created before the
	// cutoff, returning how many were deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
