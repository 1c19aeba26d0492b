package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookhub-backend/internal/domains/notification"
	"bookhub-backend/internal/domains/post"
	"bookhub-backend/internal/shared/auth"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, p *post.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.PostWithMeta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*post.PostWithMeta), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, params url.Values, limit, offset int) ([]post.PostWithMeta, int, error) {
	args := m.Called(ctx, params, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]post.PostWithMeta), args.Int(1), args.Error(2)
}

func (m *mockRepository) Update(ctx context.Context, p *post.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *mockRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueDeliver(ctx context.Context, payload notification.DeliverPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func identityFor(userID uuid.UUID, role auth.Role) *auth.Identity {
	return &auth.Identity{UserID: userID, Username: "reader", Role: role}
}

func postOwnedBy(authorID uuid.UUID) *post.PostWithMeta {
	now := time.Now()
	return &post.PostWithMeta{
		Post: post.Post{
			ID:        uuid.New(),
			AuthorID:  authorID,
			Title:     "Rereading the classics",
			Content:   "Some thoughts.",
			Tags:      []string{"books"},
			CreatedAt: now,
			UpdatedAt: now,
		},
		AuthorUsername: "writer",
		LikeCount:      0,
	}
}

func TestLike_NotifiesAuthor(t *testing.T) {
	repo := new(mockRepository)
	enqueuer := new(mockEnqueuer)
	svc := NewPostService(repo, enqueuer)

	authorID := uuid.New()
	likerID := uuid.New()
	p := postOwnedBy(authorID)

	repo.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("AddLike", mock.Anything, p.ID, likerID).Return(nil)
	enqueuer.On("EnqueueDeliver", mock.Anything, mock.MatchedBy(func(payload notification.DeliverPayload) bool {
		return payload.RecipientID == authorID &&
			payload.ActorID == likerID &&
			payload.Verb == notification.VerbLiked &&
			payload.PostID == p.ID
	})).Return(nil)

	_, err := svc.Like(context.Background(), identityFor(likerID, auth.RoleMember), p.ID)

	require.NoError(t, err)
	enqueuer.AssertExpectations(t)
}

func TestLike_SelfLikeSkipsNotification(t *testing.T) {
	repo := new(mockRepository)
	enqueuer := new(mockEnqueuer)
	svc := NewPostService(repo, enqueuer)

	authorID := uuid.New()
	p := postOwnedBy(authorID)

	repo.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("AddLike", mock.Anything, p.ID, authorID).Return(nil)

	_, err := svc.Like(context.Background(), identityFor(authorID, auth.RoleMember), p.ID)

	require.NoError(t, err)
	enqueuer.AssertNotCalled(t, "EnqueueDeliver")
}

func TestLike_AlreadyLiked(t *testing.T) {
	repo := new(mockRepository)
	enqueuer := new(mockEnqueuer)
	svc := NewPostService(repo, enqueuer)

	likerID := uuid.New()
	p := postOwnedBy(uuid.New())

	repo.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("AddLike", mock.Anything, p.ID, likerID).Return(post.ErrAlreadyLiked)

	_, err := svc.Like(context.Background(), identityFor(likerID, auth.RoleMember), p.ID)

	assert.ErrorIs(t, err, post.ErrAlreadyLiked)
	enqueuer.AssertNotCalled(t, "EnqueueDeliver")
}

func TestLike_EnqueueFailureDoesNotFailLike(t *testing.T) {
	repo := new(mockRepository)
	enqueuer := new(mockEnqueuer)
	svc := NewPostService(repo, enqueuer)

	likerID := uuid.New()
	p := postOwnedBy(uuid.New())

	repo.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("AddLike", mock.Anything, p.ID, likerID).Return(nil)
	enqueuer.On("EnqueueDeliver", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.Like(context.Background(), identityFor(likerID, auth.RoleMember), p.ID)

	assert.NoError(t, err, "the like stands even when the queue is down")
}

func TestUnlike_NotLiked(t *testing.T) {
	repo := new(mockRepository)
	enqueuer := new(mockEnqueuer)
	svc := NewPostService(repo, enqueuer)

	likerID := uuid.New()
	p := postOwnedBy(uuid.New())

	repo.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	repo.On("RemoveLike", mock.Anything, p.ID, likerID).Return(post.ErrNotLiked)

	_, err := svc.Unlike(context.Background(), identityFor(likerID, auth.RoleMember), p.ID)

	assert.ErrorIs(t, err, post.ErrNotLiked)
}

func TestUpdate_OnlyOwnerOrAdmin(t *testing.T) {
	repo := new(mockRepository)
	enqueuer := new(mockEnqueuer)
	svc := NewPostService(repo, enqueuer)

	authorID := uuid.New()
	strangerID := uuid.New()
	p := postOwnedBy(authorID)
	newTitle := "Edited title"

	repo.On("GetByID", mock.Anything, p.ID).Return(p, nil)

	_, err := svc.Update(context.Background(), identityFor(strangerID, auth.RoleMember), p.ID, &post.UpdatePostRequest{Title: &newTitle})
	assert.ErrorIs(t, err, post.ErrNotOwner)

	repo.On("Update", mock.Anything, mock.AnythingOfType("*post.Post")).Return(nil)

	_, err = svc.Update(context.Background(), identityFor(strangerID, auth.RoleAdmin), p.ID, &post.UpdatePostRequest{Title: &newTitle})
	assert.NoError(t, err, "admins may edit any post")
}

func TestDelete_OnlyOwnerOrAdmin(t *testing.T) {
	repo := new(mockRepository)
	enqueuer := new(mockEnqueuer)
	svc := NewPostService(repo, enqueuer)

	authorID := uuid.New()
	p := postOwnedBy(authorID)

	repo.On("GetByID", mock.Anything, p.ID).Return(p, nil)

	_, err := svc.Delete(context.Background(), identityFor(uuid.New(), auth.RoleMember), p.ID)
	assert.ErrorIs(t, err, post.ErrNotOwner)

	repo.On("Delete", mock.Anything, p.ID).Return(nil)

	summary, err := svc.Delete(context.Background(), identityFor(authorID, auth.RoleMember), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Title, summary.Title)
}
