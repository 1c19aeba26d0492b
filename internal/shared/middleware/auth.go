package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sharedauth "bookhub-backend/internal/shared/auth"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/pkg/jwt"
)

// IdentityKey is the gin context key holding the caller's *auth.Identity.
const IdentityKey = "identity"

// IdentityFrom returns the authenticated identity, or nil for anonymous.
func IdentityFrom(c *gin.Context) *sharedauth.Identity {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, ok := v.(*sharedauth.Identity)
	if !ok {
		return nil
	}
	return identity
}

func identityFromToken(manager *jwt.Manager, token string) (*sharedauth.Identity, error) {
	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, err
	}

	return &sharedauth.Identity{
		UserID:   userID,
		Username: claims.Username,
		Role:     sharedauth.Role(claims.Role),
	}, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// OptionalAuth extracts an identity when a valid bearer token is present
// and leaves the request anonymous otherwise. Used on public routes so
// gated siblings can share one router group.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if identity, err := identityFromToken(manager, token); err == nil {
				c.Set(IdentityKey, identity)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c, "authentication credentials were not provided")
			c.Abort()
			return
		}

		identity, err := identityFromToken(manager, token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}
