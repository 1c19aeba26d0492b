package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"bookhub-backend/internal/domains/notification"
	"bookhub-backend/pkg/logger"
)

// NewDeliverHandler returns the asynq handler for delivery tasks.
func NewDeliverHandler(service notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload notification.DeliverPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			// Malformed payloads never succeed on retry.
			return fmt.Errorf("unmarshal deliver payload: %w: %w", err, asynq.SkipRetry)
		}

		logger.Debug("processing notification delivery", map[string]interface{}{
			"recipient_id": payload.RecipientID.String(),
			"verb":         payload.Verb,
		})

		return service.Deliver(ctx, payload)
	}
}
