package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookhub-backend/internal/domains/follow"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) AddEdge(ctx context.Context, followerID, followeeID uuid.UUID) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *mockRepository) RemoveEdge(ctx context.Context, followerID, followeeID uuid.UUID) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *mockRepository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) Followers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]follow.FollowUser, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]follow.FollowUser), args.Int(1), args.Error(2)
}

func (m *mockRepository) Following(ctx context.Context, userID uuid.UUID, limit, offset int) ([]follow.FollowUser, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]follow.FollowUser), args.Int(1), args.Error(2)
}

func (m *mockRepository) Counts(ctx context.Context, userID uuid.UUID) (int, int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Int(1), args.Error(2)
}

func TestFollow_SelfRejected(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	id := uuid.New()
	_, err := svc.Follow(context.Background(), id, id)

	assert.ErrorIs(t, err, follow.ErrSelfFollow)
	repo.AssertNotCalled(t, "AddEdge")
}

func TestFollow_CreatesEdge(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	follower := uuid.New()
	followee := uuid.New()

	repo.On("UserExists", mock.Anything, followee).Return(true, nil)
	repo.On("AddEdge", mock.Anything, follower, followee).Return(nil)
	repo.On("Exists", mock.Anything, follower, followee).Return(true, nil)
	repo.On("Counts", mock.Anything, followee).Return(1, 0, nil)

	status, err := svc.Follow(context.Background(), follower, followee)

	require.NoError(t, err)
	assert.True(t, status.Following)
	assert.Equal(t, 1, status.FollowerCount)
	repo.AssertExpectations(t)
}

func TestFollow_RepeatIsIdempotent(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	follower := uuid.New()
	followee := uuid.New()

	repo.On("UserExists", mock.Anything, followee).Return(true, nil)
	// The edge insert is a no-op when the pair already exists.
	repo.On("AddEdge", mock.Anything, follower, followee).Return(nil)
	repo.On("Exists", mock.Anything, follower, followee).Return(true, nil)
	repo.On("Counts", mock.Anything, followee).Return(1, 0, nil)

	first, err := svc.Follow(context.Background(), follower, followee)
	require.NoError(t, err)

	second, err := svc.Follow(context.Background(), follower, followee)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeat follow reports the same state")
}

func TestFollow_UnknownUser(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	follower := uuid.New()
	followee := uuid.New()

	repo.On("UserExists", mock.Anything, followee).Return(false, nil)

	_, err := svc.Follow(context.Background(), follower, followee)

	assert.ErrorIs(t, err, follow.ErrUserNotFound)
	repo.AssertNotCalled(t, "AddEdge")
}

func TestUnfollow_NotFollowing(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	follower := uuid.New()
	followee := uuid.New()

	repo.On("RemoveEdge", mock.Anything, follower, followee).Return(follow.ErrNotFollowing)

	_, err := svc.Unfollow(context.Background(), follower, followee)

	assert.ErrorIs(t, err, follow.ErrNotFollowing)
}

func TestFollowers_UnknownUser(t *testing.T) {
	repo := new(mockRepository)
	svc := NewFollowService(repo)

	userID := uuid.New()
	repo.On("UserExists", mock.Anything, userID).Return(false, nil)

	_, _, err := svc.Followers(context.Background(), userID, 20, 0)

	assert.ErrorIs(t, err, follow.ErrUserNotFound)
}
