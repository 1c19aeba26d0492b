package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	sharedauth "bookhub-backend/internal/shared/auth"
	"bookhub-backend/internal/shared/response"
)

// RequireCapability gates an operation on the permission check in
// auth.Decide. Missing credentials map to 401, an insufficient role to
// 403; the distinction only matters for logging.
func RequireCapability(capability sharedauth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)

		switch sharedauth.Decide(identity, capability) {
		case sharedauth.Allow:
			c.Next()
		case sharedauth.DenyUnauthenticated:
			log.Info().
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Str("capability", string(capability)).
				Msg("gate denied: unauthenticated")
			response.Unauthorized(c, "authentication required")
			c.Abort()
		case sharedauth.DenyForbidden:
			log.Info().
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Str("capability", string(capability)).
				Str("username", identity.Username).
				Str("role", string(identity.Role)).
				Msg("gate denied: forbidden")
			response.Forbidden(c, "you do not have permission to perform this action")
			c.Abort()
		}
	}
}
