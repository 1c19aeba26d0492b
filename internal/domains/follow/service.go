package follow

import (
	"context"

	"github.com/google/uuid"
)

// Service is the follow business logic contract.
type Service interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) (*FollowStatus, error)
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) (*FollowStatus, error)
	Followers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]FollowUser, int, error)
	Following(ctx context.Context, userID uuid.UUID, limit, offset int) ([]FollowUser, int, error)
}
