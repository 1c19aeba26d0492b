package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookhub-backend/internal/domains/user"
	"bookhub-backend/internal/shared/auth"
	"bookhub-backend/pkg/jwt"
	"bookhub-backend/pkg/logger"
)

const bcryptCost = 12

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewUserService creates the user service.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{repo: repo, jwtManager: jwtManager}
}

// Register creates the account and its profile. The profile is an
// explicit step of registration, not a side effect; CreateWithProfile
// runs both inserts in one transaction.
func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.UserResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         string(auth.RoleMember),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	p := &user.Profile{
		ID:        uuid.New(),
		UserID:    u.ID,
		Bio:       req.Bio,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateWithProfile(ctx, u, p); err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id":  u.ID.String(),
		"username": u.Username,
	})

	return u.ToResponse(p), nil
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the username exists.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return nil, err
	}

	logger.Info("user logged in", map[string]interface{}{
		"user_id": u.ID.String(),
	})

	return tokens, nil
}

func (s *userService) Refresh(ctx context.Context, req *user.RefreshRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	// Reload so a role change since issuance shows up in the new pair.
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	return s.issueTokens(u)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return u.ToResponse(p), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *user.UpdateProfileRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Website != nil {
		p.Website = *req.Website
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("profile updated", map[string]interface{}{
		"user_id": userID.String(),
	})

	return u.ToResponse(p), nil
}

func (s *userService) issueTokens(u *user.User) (*user.TokenResponse, error) {
	access, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Username, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refresh, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &user.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
	}, nil
}
