package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/notification"
	"bookhub-backend/internal/domains/post"
	"bookhub-backend/internal/shared/auth"
	"bookhub-backend/pkg/logger"
)

type postService struct {
	repo     post.Repository
	enqueuer notification.Enqueuer
}

// NewPostService creates the post service.
func NewPostService(repo post.Repository, enqueuer notification.Enqueuer) post.Service {
	return &postService{repo: repo, enqueuer: enqueuer}
}

func (s *postService) Create(ctx context.Context, identity *auth.Identity, req *post.CreatePostRequest) (*post.PostResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &post.Post{
		ID:        uuid.New(),
		AuthorID:  identity.UserID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	logger.Info("post created", map[string]interface{}{
		"post_id":   p.ID.String(),
		"author_id": p.AuthorID.String(),
	})

	created, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("reload created post: %w", err)
	}

	return created.ToResponse(), nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*post.PostResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.ToResponse(), nil
}

func (s *postService) List(ctx context.Context, params url.Values, limit, offset int) ([]*post.PostResponse, int, error) {
	posts, total, err := s.repo.List(ctx, params, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*post.PostResponse, len(posts))
	for i := range posts {
		responses[i] = posts[i].ToResponse()
	}

	return responses, total, nil
}

func (s *postService) Update(ctx context.Context, identity *auth.Identity, id uuid.UUID, req *post.UpdatePostRequest) (*post.PostResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canModify(identity, existing.AuthorID) {
		return nil, post.ErrNotOwner
	}

	p := existing.Post
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &p); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload updated post: %w", err)
	}

	return updated.ToResponse(), nil
}

func (s *postService) Delete(ctx context.Context, identity *auth.Identity, id uuid.UUID) (*post.DeletedPostSummary, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canModify(identity, p.AuthorID) {
		return nil, post.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	logger.Info("post deleted", map[string]interface{}{
		"post_id": p.ID.String(),
	})

	return &post.DeletedPostSummary{ID: p.ID, Title: p.Title}, nil
}

// Like records the like and queues a notification for the post's
// author. Liking your own post records the like but notifies no one.
func (s *postService) Like(ctx context.Context, identity *auth.Identity, postID uuid.UUID) (*post.PostResponse, error) {
	p, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddLike(ctx, postID, identity.UserID); err != nil {
		return nil, err
	}

	if p.AuthorID != identity.UserID {
		payload := notification.DeliverPayload{
			RecipientID:   p.AuthorID,
			ActorID:       identity.UserID,
			ActorUsername: identity.Username,
			Verb:          notification.VerbLiked,
			PostID:        p.ID,
			PostTitle:     p.Title,
		}
		if err := s.enqueuer.EnqueueDeliver(ctx, payload); err != nil {
			// The like itself stands; the notification is best effort.
			logger.Error("failed to enqueue like notification", err)
		}
	}

	logger.Info("post liked", map[string]interface{}{
		"post_id": postID.String(),
		"user_id": identity.UserID.String(),
	})

	return s.GetByID(ctx, postID)
}

func (s *postService) Unlike(ctx context.Context, identity *auth.Identity, postID uuid.UUID) (*post.PostResponse, error) {
	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.repo.RemoveLike(ctx, postID, identity.UserID); err != nil {
		return nil, err
	}

	logger.Info("post unliked", map[string]interface{}{
		"post_id": postID.String(),
		"user_id": identity.UserID.String(),
	})

	return s.GetByID(ctx, postID)
}

func canModify(identity *auth.Identity, authorID uuid.UUID) bool {
	if identity == nil {
		return false
	}
	return identity.UserID == authorID || identity.Role == auth.RoleAdmin
}
