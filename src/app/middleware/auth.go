package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/response"
	"blogapi/src/core/ports"
)

// IdentityKey is the context key under which the authenticated identity is
// stored.
const IdentityKey = "identity"

// Auth enforces a valid bearer token on protected routes. It verifies the
// Authorization header against the token verifier and stores the resulting
// identity in the Gin context; the core trusts that identity as given.
//
// Usage:
//
//	protected.Use(middleware.Auth(tokens))
func Auth(tokens ports.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing Authorization header", requestID)
			c.Abort()
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			response.Unauthorized(c, "invalid Authorization header", requestID)
			c.Abort()
			return
		}

		identity, err := tokens.Verify(raw)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token", requestID)
			c.Abort()
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// GetIdentity retrieves the authenticated identity from the Gin context.
// The second return is false on unprotected routes where Auth never ran.
func GetIdentity(c *gin.Context) (ports.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return ports.Identity{}, false
	}
	identity, ok := v.(ports.Identity)
	return identity, ok
}
