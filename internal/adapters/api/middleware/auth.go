package middleware

import (
	"errors"
	"net/http"
	"strings"

	"loginsvc/internal/application/token"
	"loginsvc/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

const (
	// ClaimsContextKey is the key used to store verified token claims in gin context
	ClaimsContextKey = "tokenClaims"
)

// RequireAccessToken validates the bearer token on the Authorization header
// and stores its claims in the request context. A refresh token is rejected
// here even though it carries the same signature; the type claim is checked
// explicitly.
func RequireAccessToken(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccess(parts[1])
		if errors.Is(err, auth.ErrWrongTokenType) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is not an access token"})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by RequireAccessToken, or nil
// when the middleware did not run
func ClaimsFromContext(c *gin.Context) *token.Claims {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}
