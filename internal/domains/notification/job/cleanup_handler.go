package job

import (
	"context"

	"github.com/hibiken/asynq"

	"bookhub-backend/internal/domains/notification"
)

// NewCleanupHandler returns the asynq handler for the scheduled prune
// of old read notifications.
func NewCleanupHandler(service notification.Service, retentionDays int) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		_, err := service.CleanupOld(ctx, retentionDays)
		return err
	}
}
