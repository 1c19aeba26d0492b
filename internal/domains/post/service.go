package post

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"bookhub-backend/internal/shared/auth"
)

// Service is the post business logic contract. Mutations take the
// caller's identity: posts are editable by their author or an admin.
type Service interface {
	Create(ctx context.Context, identity *auth.Identity, req *CreatePostRequest) (*PostResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PostResponse, error)
	List(ctx context.Context, params url.Values, limit, offset int) ([]*PostResponse, int, error)
	Update(ctx context.Context, identity *auth.Identity, id uuid.UUID, req *UpdatePostRequest) (*PostResponse, error)
	Delete(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*DeletedPostSummary, error)

	Like(ctx context.Context, identity *auth.Identity, postID uuid.UUID) (*PostResponse, error)
	Unlike(ctx context.Context, identity *auth.Identity, postID uuid.UUID) (*PostResponse, error)
}
