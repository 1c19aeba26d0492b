package follow

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: follower follows followee. The pair is
// unique; following twice is a no-op.
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id" db:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id" db:"followee_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// FollowUser is a user as shown in follower and following lists.
type FollowUser struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	FollowedAt time.Time `json:"followed_at" db:"followed_at"`
}

// FollowStatus reports the relationship between two users.
type FollowStatus struct {
	FolloweeID     uuid.UUID `json:"followee_id"`
	Following      bool      `json:"following"`
	FollowerCount  int       `json:"follower_count"`
	FollowingCount int       `json:"following_count"`
}
