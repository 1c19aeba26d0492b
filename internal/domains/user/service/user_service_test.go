package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookhub-backend/internal/domains/user"
	"bookhub-backend/internal/shared/auth"
	"bookhub-backend/pkg/jwt"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateWithProfile(ctx context.Context, u *user.User, p *user.Profile) error {
	args := m.Called(ctx, u, p)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

func (m *mockRepository) UpdateProfile(ctx context.Context, p *user.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func testManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 15, 72)
}

func registeredUser(password string) *user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	now := time.Now()
	return &user.User{
		ID:           uuid.New(),
		Username:     "frodo",
		Email:        "frodo@shire.example",
		PasswordHash: string(hash),
		Role:         string(auth.RoleMember),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRegister_CreatesUserWithProfile(t *testing.T) {
	repo := new(mockRepository)
	svc := NewUserService(repo, testManager())

	repo.On("CreateWithProfile", mock.Anything,
		mock.MatchedBy(func(u *user.User) bool {
			// Password is stored hashed and the default role is member.
			return u.Role == string(auth.RoleMember) &&
				u.PasswordHash != "correct-horse-battery" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse-battery")) == nil
		}),
		mock.MatchedBy(func(p *user.Profile) bool {
			return p.Bio == "hobbit of the Shire" && p.UserID != uuid.Nil
		}),
	).Return(nil)

	resp, err := svc.Register(context.Background(), &user.RegisterRequest{
		Username: "frodo",
		Email:    "Frodo@Shire.Example",
		Password: "correct-horse-battery",
		Bio:      "hobbit of the Shire",
	})

	require.NoError(t, err)
	assert.Equal(t, "frodo", resp.Username)
	assert.Equal(t, "frodo@shire.example", resp.Email, "email is lowercased")
	assert.Equal(t, string(auth.RoleMember), resp.Role)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "hobbit of the Shire", resp.Profile.Bio)
	repo.AssertExpectations(t)
}

func TestRegister_ShortPassword(t *testing.T) {
	repo := new(mockRepository)
	svc := NewUserService(repo, testManager())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Username: "frodo",
		Email:    "frodo@shire.example",
		Password: "short",
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "CreateWithProfile")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := new(mockRepository)
	svc := NewUserService(repo, testManager())

	repo.On("CreateWithProfile", mock.Anything, mock.Anything, mock.Anything).Return(user.ErrDuplicateUsername)

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Username: "frodo",
		Email:    "frodo@shire.example",
		Password: "correct-horse-battery",
	})

	assert.ErrorIs(t, err, user.ErrDuplicateUsername)
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockRepository)
	manager := testManager()
	svc := NewUserService(repo, manager)

	u := registeredUser("correct-horse-battery")
	repo.On("GetByUsername", mock.Anything, "frodo").Return(u, nil)

	tokens, err := svc.Login(context.Background(), &user.LoginRequest{
		Username: "frodo",
		Password: "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer", tokens.TokenType)

	claims, err := manager.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, string(auth.RoleMember), claims.Role)

	_, err = manager.ValidateRefreshToken(tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mockRepository)
	svc := NewUserService(repo, testManager())

	u := registeredUser("correct-horse-battery")
	repo.On("GetByUsername", mock.Anything, "frodo").Return(u, nil)

	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Username: "frodo",
		Password: "wrong-password!",
	})

	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	repo := new(mockRepository)
	svc := NewUserService(repo, testManager())

	repo.On("GetByUsername", mock.Anything, "nobody").Return(nil, user.ErrUserNotFound)

	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Username: "nobody",
		Password: "whatever-password",
	})

	assert.ErrorIs(t, err, user.ErrInvalidCredentials, "unknown users look like bad passwords")
}

func TestRefresh_RotatesTokens(t *testing.T) {
	repo := new(mockRepository)
	manager := testManager()
	svc := NewUserService(repo, manager)

	u := registeredUser("correct-horse-battery")
	refresh, err := manager.GenerateRefreshToken(u.ID.String())
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, u.ID).Return(u, nil)

	tokens, err := svc.Refresh(context.Background(), &user.RefreshRequest{RefreshToken: refresh})

	require.NoError(t, err)
	claims, err := manager.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.Username, claims.Username)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	repo := new(mockRepository)
	manager := testManager()
	svc := NewUserService(repo, manager)

	u := registeredUser("correct-horse-battery")
	access, err := manager.GenerateAccessToken(u.ID.String(), u.Username, u.Role)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), &user.RefreshRequest{RefreshToken: access})

	assert.ErrorIs(t, err, user.ErrInvalidToken, "access tokens cannot be used as refresh tokens")
}
