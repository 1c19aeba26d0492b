package post

import (
	"context"
	"net/url"

	"github.com/google/uuid"
)

// Repository is the post data access contract.
type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*PostWithMeta, error)
	List(ctx context.Context, params url.Values, limit, offset int) ([]PostWithMeta, int, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AddLike fails with ErrAlreadyLiked when the (post, user) pair
	// already exists.
	AddLike(ctx context.Context, postID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) error
}
