package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"bookhub-backend/internal/config"
	"bookhub-backend/internal/domains/notification"
	"bookhub-backend/internal/shared"
)

// Client enqueues background tasks over Redis. It implements
// notification.Enqueuer for the request path.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg *config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Host,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *Client) EnqueueDeliver(ctx context.Context, payload notification.DeliverPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal deliver payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeNotificationDeliver, data)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue(shared.QueueDefault), asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("enqueue deliver task: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
