package queue

import (
	"fmt"

	"github.com/hibiken/asynq"

	"bookhub-backend/internal/config"
	"bookhub-backend/internal/shared"
)

// NewScheduler registers the periodic tasks. The nightly cleanup runs
// at 03:00 server time.
func NewScheduler(cfg *config.RedisConfig) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{
		Addr:     cfg.Host,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil)

	cleanupTask := asynq.NewTask(shared.TypeNotificationCleanup, nil)
	if _, err := scheduler.Register("0 3 * * *", cleanupTask, asynq.Queue(shared.QueueLow)); err != nil {
		return nil, fmt.Errorf("register cleanup task: %w", err)
	}

	return scheduler, nil
}
