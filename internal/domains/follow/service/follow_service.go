package service

import (
	"context"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/follow"
	"bookhub-backend/pkg/logger"
)

type followService struct {
	repo follow.Repository
}

// NewFollowService creates the follow service.
func NewFollowService(repo follow.Repository) follow.Service {
	return &followService{repo: repo}
}

// Follow creates the edge. Following a user you already follow leaves
// the edge untouched and still reports success.
func (s *followService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) (*follow.FollowStatus, error) {
	if followerID == followeeID {
		return nil, follow.ErrSelfFollow
	}

	exists, err := s.repo.UserExists(ctx, followeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, follow.ErrUserNotFound
	}

	if err := s.repo.AddEdge(ctx, followerID, followeeID); err != nil {
		return nil, err
	}

	logger.Info("user followed", map[string]interface{}{
		"follower_id": followerID.String(),
		"followee_id": followeeID.String(),
	})

	return s.status(ctx, followerID, followeeID)
}

func (s *followService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) (*follow.FollowStatus, error) {
	if followerID == followeeID {
		return nil, follow.ErrSelfFollow
	}

	if err := s.repo.RemoveEdge(ctx, followerID, followeeID); err != nil {
		return nil, err
	}

	logger.Info("user unfollowed", map[string]interface{}{
		"follower_id": followerID.String(),
		"followee_id": followeeID.String(),
	})

	return s.status(ctx, followerID, followeeID)
}

func (s *followService) Followers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]follow.FollowUser, int, error) {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, follow.ErrUserNotFound
	}

	return s.repo.Followers(ctx, userID, limit, offset)
}

func (s *followService) Following(ctx context.Context, userID uuid.UUID, limit, offset int) ([]follow.FollowUser, int, error) {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, follow.ErrUserNotFound
	}

	return s.repo.Following(ctx, userID, limit, offset)
}

func (s *followService) status(ctx context.Context, followerID, followeeID uuid.UUID) (*follow.FollowStatus, error) {
	following, err := s.repo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}

	followers, followingCount, err := s.repo.Counts(ctx, followeeID)
	if err != nil {
		return nil, err
	}

	return &follow.FollowStatus{
		FolloweeID:     followeeID,
		Following:      following,
		FollowerCount:  followers,
		FollowingCount: followingCount,
	}, nil
}
