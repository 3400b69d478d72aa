// Package middleware provides HTTP middleware functions.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Identity describes the authenticated caller as verified by the
// upstream identity provider. The service never checks credentials
// itself; it trusts the headers set by the gateway.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

// Header names populated by the identity gateway.
const (
	HeaderUserID = "X-User-Id"
	HeaderEmail  = "X-User-Email"
	HeaderRole   = "X-User-Role"
)

const identityKey = "identity"

// RequireIdentity returns a middleware that extracts the verified caller
// identity from gateway headers and aborts with 401 when it is missing.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.GetHeader(HeaderUserID)
		email := c.GetHeader(HeaderEmail)
		if rawID == "" || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "missing identity",
				},
			})
			return
		}

		userID, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "invalid identity",
				},
			})
			return
		}

		role := c.GetHeader(HeaderRole)
		if role == "" {
			role = "USER"
		}

		c.Set(identityKey, Identity{
			UserID: uint(userID),
			Email:  email,
			Role:   role,
		})
		c.Next()
	}
}

// RequireRole returns a middleware that aborts with 403 unless the
// caller identity carries the given role. Must run after RequireIdentity.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok || identity.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "insufficient privileges",
				},
			})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the caller identity stored by RequireIdentity.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
