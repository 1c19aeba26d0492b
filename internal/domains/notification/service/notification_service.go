package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/notification"
	"bookhub-backend/pkg/logger"
)

type notificationService struct {
	repo notification.Repository
}

// NewNotificationService creates the notification service.
func NewNotificationService(repo notification.Repository) notification.Service {
	return &notificationService{repo: repo}
}

// Deliver materializes a queued payload as a notification row. Runs in
// the worker process.
func (s *notificationService) Deliver(ctx context.Context, payload notification.DeliverPayload) error {
	n := &notification.Notification{
		ID:          uuid.New(),
		RecipientID: payload.RecipientID,
		ActorID:     payload.ActorID,
		Verb:        payload.Verb,
		PostID:      payload.PostID,
		Message:     fmt.Sprintf("%s %s your post %q", payload.ActorUsername, payload.Verb, payload.PostTitle),
		IsRead:      false,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}

	logger.Info("notification delivered", map[string]interface{}{
		"notification_id": n.ID.String(),
		"recipient_id":    n.RecipientID.String(),
		"verb":            n.Verb,
	})

	return nil
}

func (s *notificationService) List(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*notification.NotificationResponse, int, error) {
	notifications, total, err := s.repo.ListByRecipient(ctx, recipientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*notification.NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = notifications[i].ToResponse()
	}

	return responses, total, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, recipientID)
}

// CleanupOld prunes read notifications past the retention window.
// Scheduled nightly in the worker.
func (s *notificationService) CleanupOld(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	logger.Info("old notifications cleaned up", map[string]interface{}{
		"deleted":        deleted,
		"retention_days": retentionDays,
	})

	return deleted, nil
}
