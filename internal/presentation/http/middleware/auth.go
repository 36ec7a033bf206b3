package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/application/service"
	"github.com/solarline/pos-gateway/internal/auth"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/pkg/utils"
)

// AuthMiddleware validates the session JWT, loads the backing session and
// arms the request context with the upstream token state
func AuthMiddleware(jwtManager *utils.JWTManager, authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateSessionToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		session, state, err := authService.ResolveSession(c.Request.Context(), claims.SessionID)
		if err != nil {
			response.Unauthorized(c, "Session expired, please sign in again")
			c.Abort()
			return
		}

		// Set session info in context
		c.Set("session_id", session.ID)
		c.Set("username", session.Username)
		c.Set("user", []byte(session.User))

		c.Request = c.Request.WithContext(auth.WithState(c.Request.Context(), state))

		c.Next()
	}
}
