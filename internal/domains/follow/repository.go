package follow

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the follow data access contract.
type Repository interface {
	// AddEdge inserts the follower->followee edge. Inserting an edge
	// that already exists is a no-op.
	AddEdge(ctx context.Context, followerID, followeeID uuid.UUID) error
	RemoveEdge(ctx context.Context, followerID, followeeID uuid.UUID) error

	Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)

	Followers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]FollowUser, int, error)
	Following(ctx context.Context, userID uuid.UUID, limit, offset int) ([]FollowUser, int, error)
	Counts(ctx context.Context, userID uuid.UUID) (followers, following int, err error)
}
